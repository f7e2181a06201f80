package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-theft-craft/shared-enchantments/pkg/nbt"
)

// Slot represents a Minecraft inventory slot.
type Slot struct {
	ItemID int16 // -1 = empty
	Count  int8
	Damage int16
	// NBT holds an encoded root compound, or nil when the stack has no tag.
	NBT []byte
}

// EmptySlot is a convenience value for an empty slot.
var EmptySlot = Slot{ItemID: -1}

// IsEmpty returns true if the slot contains no item.
func (s Slot) IsEmpty() bool {
	return s.ItemID == -1
}

// Tag decodes the slot's NBT. A slot without NBT yields a nil compound.
func (s Slot) Tag() (nbt.Compound, error) {
	if len(s.NBT) == 0 {
		return nil, nil
	}
	_, c, err := nbt.Read(bytes.NewReader(s.NBT))
	if err != nil {
		return nil, fmt.Errorf("decode slot nbt: %w", err)
	}
	return c, nil
}

// WriteSlot writes s in the 1.8 slot format.
func WriteSlot(w io.Writer, s Slot) error {
	if err := WriteI16(w, s.ItemID); err != nil {
		return fmt.Errorf("write slot item id: %w", err)
	}
	if s.IsEmpty() {
		return nil
	}
	if err := WriteI8(w, s.Count); err != nil {
		return fmt.Errorf("write slot count: %w", err)
	}
	if err := WriteI16(w, s.Damage); err != nil {
		return fmt.Errorf("write slot damage: %w", err)
	}
	if len(s.NBT) == 0 {
		if _, err := w.Write([]byte{nbt.TagEnd}); err != nil {
			return fmt.Errorf("write slot nbt: %w", err)
		}
		return nil
	}
	if _, err := w.Write(s.NBT); err != nil {
		return fmt.Errorf("write slot nbt: %w", err)
	}
	return nil
}

// ReadSlot reads a slot from the given reader.
// If ItemID is -1, the slot is empty.
func ReadSlot(r io.Reader) (Slot, error) {
	itemID, err := ReadI16(r)
	if err != nil {
		return Slot{}, fmt.Errorf("read slot item id: %w", err)
	}

	if itemID == -1 {
		return EmptySlot, nil
	}

	count, err := ReadI8(r)
	if err != nil {
		return Slot{}, fmt.Errorf("read slot count: %w", err)
	}

	damage, err := ReadI16(r)
	if err != nil {
		return Slot{}, fmt.Errorf("read slot damage: %w", err)
	}

	// NBT data: read tag type byte. If 0x00, no NBT follows.
	nbtTag, err := ReadU8(r)
	if err != nil {
		return Slot{}, fmt.Errorf("read slot nbt tag: %w", err)
	}

	s := Slot{ItemID: itemID, Count: count, Damage: damage}
	if nbtTag == nbt.TagEnd {
		return s, nil
	}

	var raw bytes.Buffer
	raw.WriteByte(nbtTag)
	src := io.MultiReader(bytes.NewReader([]byte{nbtTag}), io.TeeReader(r, &raw))
	// The first byte is replayed from memory; only the rest is captured by the tee.
	if _, _, err := nbt.Read(src); err != nil {
		return Slot{}, fmt.Errorf("read slot nbt: %w", err)
	}
	s.NBT = raw.Bytes()
	return s, nil
}
