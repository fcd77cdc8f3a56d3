// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/dataentry/internal/model"
)

// Backup writes every stored person to w as zstd-compressed JSON and returns
// the number of people written.
func (c *Controller) Backup(ctx context.Context, w io.Writer) (int, error) {
	data := &model.BackupData{Version: model.BackupVersion, People: []model.Person{}}
	for p, err := range c.store.FetchAllPeople(ctx) {
		if err != nil {
			return 0, fmt.Errorf("export people: %w", err)
		}
		data.People = append(data.People, p)
	}
	if err := WriteBackup(data, w); err != nil {
		return 0, err
	}
	return len(data.People), nil
}

// Restore reads a backup produced by Backup and appends every person to the
// store. Existing rows are kept. On failure the count of rows already
// written is returned with the error.
func (c *Controller) Restore(ctx context.Context, r io.Reader) (int, error) {
	data, err := ReadBackup(r)
	if err != nil {
		return 0, err
	}
	for i, p := range data.People {
		if err := c.store.InsertPerson(ctx, p.Name, p.Age); err != nil {
			return i, fmt.Errorf("import person %d: %w", i+1, err)
		}
	}
	return len(data.People), nil
}

// WriteBackup writes compressed JSON backup data to w.
func WriteBackup(data *model.BackupData, w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush backup: %w", err)
	}
	return nil
}

// ReadBackup decodes a zstd-compressed JSON backup.
func ReadBackup(r io.Reader) (*model.BackupData, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()

	var data model.BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	if data.Version != model.BackupVersion {
		return nil, fmt.Errorf("unsupported backup version %d", data.Version)
	}
	return &data, nil
}
