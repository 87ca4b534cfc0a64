// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"jaytaylor.com/html2text"

	"goWordStats/stringlib"
)

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Supported input encodings
const (
	EncodingUTF8   = "utf8"
	EncodingLatin1 = "latin1"
)

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CheckFiles returns the first file that cannot be opened for reading or is not a regular file
func CheckFiles(filenames []string) error {
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("read %s: %w", filename, err)
		}
		f.Close()
		if !FileExists(filename) {
			return fmt.Errorf("read %s: not a regular file", filename)
		}
	}
	return nil
}

// decode turns raw bytes in the given encoding into a UTF-8 string
func decode(b []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf-8":
		return string(b), nil
	case EncodingLatin1, "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().String(string(b))
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// isHTML tells from the file extension whether content must be converted to plain text
func isHTML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// File2string reads a file into a string, decoding it and converting HTML into plain text
func File2string(filename string, encoding string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}

	text, err := decode(b, encoding)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", filename, err)
	}

	if isHTML(filename) {
		plain, err := html2text.FromString(text, html2text.Options{PrettyTables: false})
		if err != nil {
			return "", fmt.Errorf("html2text %s: %w", filename, err)
		}
		text = plain
	}

	return text, nil
}

// NamedText is the content of one input file
type NamedText struct {
	Name string
	Text string
}

// Files2strings reads every file in order, stopping at the first failure
func Files2strings(filenames []string, encoding string) ([]NamedText, error) {
	texts := make([]NamedText, 0, len(filenames))
	for _, filename := range filenames {
		text, err := File2string(filename, encoding)
		if err != nil {
			return nil, err
		}
		texts = append(texts, NamedText{Name: filename, Text: text})
	}
	return texts, nil
}

// LoadDictionary reads the list of target words: every lowercased token of the file, in order
func LoadDictionary(filename string, encoding string) ([]string, error) {
	text, err := File2string(filename, encoding)
	if err != nil {
		return nil, err
	}
	return stringlib.Words(text), nil
}

// LoadIgnores reads the ignore words list from a file (one word per line).
// An empty filename means no ignore list.
func LoadIgnores(filename string, encoding string) (map[string]bool, error) {
	ignores := make(map[string]bool)
	if filename == "" {
		return ignores, nil
	}

	text, err := File2string(filename, encoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			ignores[word] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", filename, err)
	}

	return ignores, nil
}
