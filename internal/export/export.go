// Package export writes the shared group's contents to disk.
package export

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-theft-craft/shared-enchantments/internal/enchantgroup"
	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
	"github.com/go-theft-craft/shared-enchantments/pkg/nbt"
	"github.com/go-theft-craft/shared-enchantments/pkg/protocol"
)

// Listing is the JSON form of an export.
type Listing struct {
	Group string       `json:"group"`
	Title string       `json:"title"`
	Items []ItemRecord `json:"items"`
}

// ItemRecord is one display item in a Listing.
type ItemRecord struct {
	Contributor   string `json:"contributor"`
	Enchantment   string `json:"enchantment"`
	EnchantmentID int    `json:"enchantment_id"`
	Level         int    `json:"level"`
	Label         string `json:"label"`
}

// NewListing builds a Listing from display items.
func NewListing(group, title string, items []enchantgroup.DisplayItem, lang gamedata.LanguageRegistry) *Listing {
	l := &Listing{Group: group, Title: title, Items: make([]ItemRecord, 0, len(items))}
	for _, it := range items {
		l.Items = append(l.Items, ItemRecord{
			Contributor:   it.Contributor,
			Enchantment:   it.Enchantment.ResourceName(),
			EnchantmentID: it.Enchantment.ID,
			Level:         it.Level,
			Label:         it.Label(lang),
		})
	}
	return l
}

// WriteJSON writes l to path atomically.
func WriteJSON(path string, l *Listing) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	return atomicWrite(path, data)
}

// EncodeNBT encodes items as a gzip-compressed compound
// {Items:[{id,Count,Damage,tag}]}. List order is item order; there is no
// inventory slot index, so any number of items fits.
func EncodeNBT(items []enchantgroup.DisplayItem) ([]byte, error) {
	var raw bytes.Buffer
	w := nbt.NewWriter(&raw)
	w.BeginCompound("")
	w.BeginList("Items", nbt.TagCompound, int32(len(items)))
	for i, it := range items {
		s := it.Slot()
		w.BeginListCompound()
		w.WriteShort("id", s.ItemID)
		w.WriteTagByte("Count", byte(s.Count))
		w.WriteShort("Damage", s.Damage)
		if err := w.WriteRawCompound("tag", s.NBT); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		w.EndCompound()
	}
	w.EndCompound()
	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("encode nbt: %w", err)
	}

	var out bytes.Buffer
	zw := gzip.NewWriter(&out)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		return nil, fmt.Errorf("compress nbt: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress nbt: %w", err)
	}
	return out.Bytes(), nil
}

// WriteNBT encodes items with EncodeNBT and writes them to path atomically.
func WriteNBT(path string, items []enchantgroup.DisplayItem) error {
	data, err := EncodeNBT(items)
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

// EncodeSlots concatenates slots in the 1.8 slot wire format.
func EncodeSlots(slots []protocol.Slot) ([]byte, error) {
	var buf bytes.Buffer
	for i, s := range slots {
		if err := protocol.WriteSlot(&buf, s); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

// WriteSlots encodes slots with EncodeSlots and writes them to path atomically.
func WriteSlots(path string, slots []protocol.Slot) error {
	data, err := EncodeSlots(slots)
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

// ReadSlots decodes a stream written by EncodeSlots until EOF.
func ReadSlots(r io.Reader) ([]protocol.Slot, error) {
	br := bufio.NewReader(r)
	var slots []protocol.Slot
	for {
		if _, err := br.Peek(1); errors.Is(err, io.EOF) {
			return slots, nil
		}
		s, err := protocol.ReadSlot(br)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", len(slots), err)
		}
		slots = append(slots, s)
	}
}

// atomicWrite writes data to path using a temp file + rename.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
