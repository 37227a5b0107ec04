package scorepadtypes

import (
	"fmt"
	"slices"
)

// WinnerSelection models the two winner slots of the match form. A player
// chosen in one slot is disabled in the other.
type WinnerSelection struct {
	options []string
	slots   [WinnerCount]string
}

// NewWinnerSelection offers the given players in both slots.
func NewWinnerSelection(playerIDs []string) *WinnerSelection {
	return &WinnerSelection{options: slices.Clone(playerIDs)}
}

func (w *WinnerSelection) other(slot int) int {
	return WinnerCount - 1 - slot
}

func (w *WinnerSelection) checkSlot(slot int) error {
	if slot < 0 || slot >= WinnerCount {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}

// IsDisabled reports whether playerID is unavailable in slot.
func (w *WinnerSelection) IsDisabled(slot int, playerID string) bool {
	if w.checkSlot(slot) != nil || playerID == "" {
		return false
	}
	return w.slots[w.other(slot)] == playerID
}

// Select puts playerID into slot, replacing any earlier choice there.
func (w *WinnerSelection) Select(slot int, playerID string) error {
	if err := w.checkSlot(slot); err != nil {
		return err
	}
	if !slices.Contains(w.options, playerID) {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, playerID)
	}
	if w.IsDisabled(slot, playerID) {
		return fmt.Errorf("%w: %q", ErrPlayerDisabled, playerID)
	}
	w.slots[slot] = playerID
	return nil
}

// Selected returns the player in slot, or "" when it is empty.
func (w *WinnerSelection) Selected(slot int) string {
	if w.checkSlot(slot) != nil {
		return ""
	}
	return w.slots[slot]
}

// Complete reports whether both slots are filled; only then can a match be submitted.
func (w *WinnerSelection) Complete() bool {
	for _, id := range w.slots {
		if id == "" {
			return false
		}
	}
	return true
}

// Winners returns the selected players in slot order.
func (w *WinnerSelection) Winners() []string {
	return slices.Clone(w.slots[:])
}

// Reset clears both slots, which re-enables every option.
func (w *WinnerSelection) Reset() {
	w.slots = [WinnerCount]string{}
}
