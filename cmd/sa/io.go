package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// readInput reads all of r and maps it onto this package's sentinel
// convention: byte b becomes the integer b+1, followed by a single trailing
// 0 that no real byte can ever produce.
func readInput(r io.Reader) ([]int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := make([]int, len(raw)+1)
	for i, b := range raw {
		s[i] = int(b) + 1
	}
	s[len(raw)] = 0
	return s, nil
}

// writeBinary writes sa as a raw dump of little-endian uint32 values.
func writeBinary(w io.Writer, sa []int) error {
	bw := bufio.NewWriter(w)
	var buf [4]byte
	for _, v := range sa {
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeText writes sa as space-separated decimal integers followed by a
// single trailing newline.
func writeText(w io.Writer, sa []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range sa {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%d", v); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
