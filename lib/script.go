package lib

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ScriptExt is the file extension ReadScriptsFromDir looks for.
const ScriptExt = ".lox"

type Script struct {
	Name   string
	Path   string
	Source string
	Tokens []Token
	AST    Expr
}

func ReadScriptsFromDir(dir string) ([]Script, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scripts from %s", dir)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ScriptExt {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	scripts := []Script{}
	for _, name := range names {
		s, err := ReadScriptFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	return scripts, nil
}

func ReadScriptFromFile(filePath string) (Script, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return Script{}, errors.Wrapf(err, "reading script %s", filePath)
	}
	return Script{
		Name:   scriptNameFromPath(filePath),
		Path:   filePath,
		Source: string(bytes),
	}, nil
}

// Compile scans and parses the script source. On failure Tokens and AST are
// left empty and the error names the script.
func (s *Script) Compile(opts ParseOptions) error {
	s.Tokens = nil
	s.AST = nil

	tokens, err := Scan(s.Source)
	if err != nil {
		return errors.Wrap(err, s.Name)
	}

	expr, err := ParseWithOptions(tokens, opts)
	if err != nil {
		return errors.Wrap(err, s.Name)
	}

	s.Tokens = tokens
	s.AST = expr
	return nil
}

func scriptNameFromPath(filePath string) string {
	_, fileName := filepath.Split(filePath)
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
