// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"os"
	"path/filepath"
)

// CompressFile compresses the file src into dst. With rebuild false the
// retained codebook is reused, see EncodeReuse. dst is only replaced when
// the whole stream was produced.
func (c *Codec) CompressFile(dst, src string, rebuild bool) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("huffman: %w", err)
	}
	out, err := c.encode(data, rebuild)
	if err != nil {
		return err
	}
	return writeFile(dst, out)
}

// DecompressFile decompresses the file src into dst.
func (c *Codec) DecompressFile(dst, src string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("huffman: %w", err)
	}
	out, err := c.Decode(data)
	if err != nil {
		return err
	}
	return writeFile(dst, out)
}

// writeFile writes data to a temporary file next to name and renames it.
func writeFile(name string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("huffman: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("huffman: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("huffman: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("huffman: %w", err)
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("huffman: %w", err)
	}
	return nil
}
