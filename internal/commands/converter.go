package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/convert"
	"github.com/gerunddev/docbridge/internal/docx"
	"github.com/gerunddev/docbridge/internal/logger"
	"github.com/gerunddev/docbridge/internal/output"
)

// utf8BOM is stripped from markdown input
const utf8BOM = "\ufeff"

// Converter turns one input file into its counterpart next to it
type Converter struct {
	Config   *config.Config
	Logger   *logger.Logger
	Prompter output.Prompter

	// Force overwrites an existing destination regardless of policy
	Force bool
}

// ConvertFile converts input in the given direction and returns the path
// that was written. Nothing is written when conversion fails.
func (c *Converter) ConvertFile(dir Direction, input string) (string, error) {
	log := c.logger()
	start := time.Now()

	if err := checkInput(dir, input); err != nil {
		return "", err
	}
	log.ConversionStarted(input, dir.String())

	data, blocks, err := c.convert(dir, input)
	if err != nil {
		log.ConversionError(input, "", err)
		return "", err
	}

	resolver := &output.Resolver{
		Policy:   c.policy(),
		Prompter: c.Prompter,
		Logger:   log,
	}
	dest, err := resolver.Resolve(output.DestinationPath(input, dir.OutputExt()))
	if err != nil {
		log.ConversionError(input, "", err)
		return "", err
	}

	if err := output.WriteAtomic(dest, data); err != nil {
		log.ConversionError(input, dest, err)
		return "", err
	}

	log.ConversionCompleted(input, dest, blocks, time.Since(start))
	return dest, nil
}

func (c *Converter) convert(dir Direction, input string) ([]byte, int, error) {
	switch dir {
	case ToMarkdown:
		doc, err := docx.ReadFile(input, docx.WithOnPartMissing(func(part string) {
			c.logger().PartMissing(input, part)
		}))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read %s: %w", input, err)
		}
		return []byte(convert.DocumentToMarkdown(doc)), len(doc.Blocks), nil

	case ToDocx:
		raw, err := os.ReadFile(input)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read %s: %w", input, err)
		}
		doc := convert.MarkdownToDocument(strings.TrimPrefix(string(raw), utf8BOM))
		data, err := docx.Marshal(doc, c.DocxOptions()...)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to write docx: %w", err)
		}
		return data, len(doc.Blocks), nil
	}
	return nil, 0, fmt.Errorf("unknown direction %d", dir)
}

// DocxOptions maps the configuration onto writer options
func (c *Converter) DocxOptions() []docx.Option {
	cfg := c.config()
	return []docx.Option{docx.WithFont(cfg.FontName, cfg.FontSize)}
}

func (c *Converter) policy() output.Policy {
	if c.Force {
		return output.PolicyOverwrite
	}
	return output.Policy(c.config().Overwrite)
}

func (c *Converter) config() *config.Config {
	if c.Config == nil {
		return config.DefaultConfig()
	}
	return c.Config
}

func (c *Converter) logger() *logger.Logger {
	if c.Logger == nil {
		return logger.Discard()
	}
	return c.Logger
}

// checkInput rejects missing inputs and inputs whose extension does not
// match the direction
func checkInput(dir Direction, input string) error {
	info, err := os.Stat(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, input)
		}
		return fmt.Errorf("failed to stat %s: %w", input, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, input)
	}

	ext := filepath.Ext(input)
	if strings.EqualFold(ext, dir.InputExt()) {
		return nil
	}
	if strings.EqualFold(ext, dir.OutputExt()) {
		return fmt.Errorf("%w: %s is a %s file, use %s to convert it",
			ErrWrongExtension, input, dir.OutputExt(), dir.Reverse().Tool())
	}
	return fmt.Errorf("%w: %s does not end in %s", ErrWrongExtension, input, dir.InputExt())
}
