package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/on-the-ground/partitions/partition"
)

func renderSet(w io.Writer, total uint, set partition.Set) error {
	plural := "s"
	if len(set) == 1 {
		plural = ""
	}
	if _, err := fmt.Fprintf(w, "%d has %d partition%s\n", total, len(set), plural); err != nil {
		return err
	}
	for _, p := range set {
		if _, err := fmt.Fprintf(w, "  %d = %s\n", total, renderPartition(p)); err != nil {
			return err
		}
	}
	return nil
}

func renderPartition(p partition.Partition) string {
	if len(p) == 0 {
		return "0 (empty partition)"
	}
	addends := make([]string, len(p))
	for i, addend := range p {
		addends[i] = strconv.FormatUint(uint64(addend), 10)
	}
	return strings.Join(addends, " + ")
}
