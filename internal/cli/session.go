package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/regxml/internal/checksum"
	"github.com/vvka-141/regxml/internal/config"
	"github.com/vvka-141/regxml/internal/dict"
	"github.com/vvka-141/regxml/internal/dictcache"
	"github.com/vvka-141/regxml/internal/dictxml"
	"github.com/vvka-141/regxml/internal/logging"
	"github.com/vvka-141/regxml/pkg/regxml"
)

// session carries the resolved configuration and logger for one command run.
type session struct {
	cfg      *config.Config
	logger   regxml.Logger
	checksum checksum.Calculator
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Resolve(rootFlags.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", regxml.ConfigFileName, err)
	}

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), rootFlags.verbose || cfg.Verbose)
	logger.Verbose("Config directory: %s", rootFlags.dir)
	if len(cfg.Dictionaries) > 0 {
		logger.Verbose("Configured dictionaries: %v", cfg.Dictionaries)
	}
	return &session{cfg: cfg, logger: logger, checksum: checksum.New()}, nil
}

// loadDictionary reads an interchange document or a snapshot, whichever path holds.
// Interchange documents go through the snapshot cache when one is configured.
func (s *session) loadDictionary(path string) (*dict.MetaDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	if dictcache.IsSnapshot(data) {
		s.logger.Verbose("Loading snapshot %s", path)
		d, err := dictcache.Read(bytes.NewReader(data), dict.WithLogger(s.logger))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return d, nil
	}

	cachePath := s.cachePath(data)
	if d, ok := s.readCache(path, cachePath); ok {
		return d, nil
	}

	s.logger.Verbose("Decoding %s", path)
	d, err := dictxml.Decode(bytes.NewReader(data), dictxml.WithSource(path), dictxml.WithLogger(s.logger))
	if err != nil {
		var perr *dictxml.ParseError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.writeCache(cachePath, d)
	return d, nil
}

// loadCollection loads paths, or the configured dictionaries when paths is empty.
func (s *session) loadCollection(paths []string) (*dict.Collection, error) {
	if len(paths) == 0 {
		paths = s.cfg.Dictionaries
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no dictionaries given and none configured in %s or %s",
			regxml.ErrInvalidConfig, regxml.ConfigFileName, regxml.EnvDictionaries)
	}

	dicts := make([]*dict.MetaDictionary, 0, len(paths))
	for _, p := range paths {
		d, err := s.loadDictionary(p)
		if err != nil {
			return nil, err
		}
		dicts = append(dicts, d)
	}
	return dict.NewCollection(dicts...)
}

// cachePath names the snapshot of an interchange document by its content.
func (s *session) cachePath(content []byte) string {
	if s.cfg.CacheDir == "" {
		return ""
	}
	return filepath.Join(s.cfg.CacheDir, s.checksum.CalculateNormalized(content)+".snap")
}

func (s *session) readCache(source, cachePath string) (*dict.MetaDictionary, bool) {
	if cachePath == "" {
		return nil, false
	}
	if _, err := os.Stat(cachePath); err != nil {
		return nil, false
	}

	d, err := dictcache.ReadFile(cachePath, dict.WithLogger(s.logger))
	if err != nil {
		s.logger.Verbose("Ignoring cache %s: %v", cachePath, err)
		return nil, false
	}
	s.logger.Verbose("Loaded %s from cache %s", source, cachePath)
	return d, true
}

func (s *session) writeCache(cachePath string, d *dict.MetaDictionary) {
	if cachePath == "" {
		return
	}
	err := os.MkdirAll(filepath.Dir(cachePath), 0755)
	if err == nil {
		err = dictcache.WriteFile(cachePath, d)
	}
	if err != nil {
		s.logger.Verbose("Failed to write cache %s: %v", cachePath, err)
		return
	}
	s.logger.Verbose("Cached %s as %s", d.SchemeURI(), cachePath)
}
