// Copyright (C) 2025 Smile ID Project
//
// This file is part of smileid-go.
//
// smileid-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// smileid-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with smileid-go.  If not, see <https://www.gnu.org/licenses/>.

package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
)

// Entry is one named member of the upload bundle. Data is used as-is when
// Path is empty; otherwise the content is read from Path at build time.
type Entry struct {
	Name string
	Data []byte
	Path string
}

// Builder produces an uploadable bundle from named entries.
type Builder interface {
	Build(entries []Entry) ([]byte, error)
}

// ZipBuilder is the default Builder, producing a plain zip archive.
type ZipBuilder struct{}

// NewZipBuilder creates a ZipBuilder.
func NewZipBuilder() *ZipBuilder {
	return &ZipBuilder{}
}

// Build writes every entry into a zip archive and returns its bytes.
func (b *ZipBuilder) Build(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, entry := range entries {
		data := entry.Data
		if entry.Path != "" {
			content, err := os.ReadFile(entry.Path)
			if err != nil {
				return nil, fmt.Errorf("failed to read archive entry %s: %w", entry.Name, err)
			}
			data = content
		}

		w, err := zw.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to add archive entry %s: %w", entry.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
