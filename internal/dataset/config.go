package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensorstream/internal/serialization"
)

// Configuration describes where a corpus lives and how to load it.
type Configuration struct {
	Classes       int
	ClassNames    []string
	ErrorFunction ErrorFunction
	TrainingPath  string
	TestingPath   string // Empty means no testing data
}

// ParseConfiguration reads a line-oriented directive stream:
//
//	classes <N>              followed by N lines, one class name each
//	localized_error <name>   "kitti" or anything else for uniform weights
//	training <path>
//	testing <path>
//
// An identifier is separated from its value by a space, a tab or '='.
// Unrecognized lines are ignored.
func ParseConfiguration(r io.Reader) (*Configuration, error) {
	cfg := &Configuration{}
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		ident, value := splitDirective(scanner.Text())

		switch ident {
		case "classes":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: classes %q", ErrInvalidDirective, line, value)
			}
			cfg.Classes = n
			cfg.ClassNames = make([]string, 0, n)
			for c := 0; c < n; c++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("%w: line %d: expected %d class names, got %d",
						ErrInvalidDirective, line, n, c)
				}
				line++
				cfg.ClassNames = append(cfg.ClassNames, strings.TrimRight(scanner.Text(), "\r"))
			}

		case "localized_error":
			fn, ok := ParseErrorFunction(value)
			if !ok {
				klog.V(1).Infof("Unknown localized error %q, using default", value)
			}
			klog.V(1).Infof("Loading dataset with %s error function", fn)
			cfg.ErrorFunction = fn

		case "training":
			cfg.TrainingPath = value

		case "testing":
			cfg.TestingPath = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return cfg, nil
}

// splitDirective splits a line into its identifier and trimmed value.
func splitDirective(line string) (ident, value string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t=")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

// LoadConfigFile reads a configuration file. Files ending in .yaml or .yml
// are parsed as manifests, anything else as a directive stream. Relative
// corpus paths are resolved against the file's directory.
func LoadConfigFile(path string) (*Configuration, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for configuration loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration: %w", err)
	}
	defer file.Close()

	var cfg *Configuration
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseManifest(file)
	default:
		cfg, err = ParseConfiguration(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.TrainingPath = resolvePath(dir, cfg.TrainingPath)
	cfg.TestingPath = resolvePath(dir, cfg.TestingPath)
	return cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Options returns the construction options described by the configuration.
func (c *Configuration) Options() Options {
	return Options{
		Classes:       c.Classes,
		ClassNames:    c.ClassNames,
		ErrorFunction: c.ErrorFunction.Func(),
	}
}

// Open memory-maps the corpus streams and builds the dataset.
// The streams are closed before Open returns.
func (c *Configuration) Open() (*TensorStreamDataset, error) {
	if c.TrainingPath == "" {
		return nil, ErrMissingTrainingPath
	}

	klog.V(1).Infof("Loading dataset with %d classes", c.Classes)
	klog.V(1).Infof("Training tensor: %s", c.TrainingPath)
	klog.V(1).Infof("Testing tensor: %s", c.TestingPath)

	training, err := serialization.OpenStream(c.TrainingPath)
	if err != nil {
		return nil, fmt.Errorf("training stream: %w", err)
	}
	defer training.Close()

	var testing io.ReadSeeker
	if c.TestingPath != "" {
		s, err := serialization.OpenStream(c.TestingPath)
		if err != nil {
			return nil, fmt.Errorf("testing stream: %w", err)
		}
		defer s.Close()
		testing = s
	}

	return New(training, testing, c.Options())
}

// FromConfiguration loads a configuration file and opens its dataset.
func FromConfiguration(path string) (*TensorStreamDataset, error) {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return cfg.Open()
}
