package dialog

import (
	"context"
	"errors"

	"github.com/hubastard/grove-dialogs/engine/ui"
)

// Prompt layouts use the 320x200 design space.

// form tracks the window and controls of one prompt so they can be torn down
// together.
type form struct {
	s   *Session
	win int
	ids []int
}

func openForm(s *Session, x, y, w, h int) (*form, error) {
	win, err := s.OpenWindow(x, y, w, h)
	if err != nil {
		return nil, err
	}
	return &form{s: s, win: win}, nil
}

func (f *form) add(typeAndFlags, x, y, w, h int, title string) (int, error) {
	id, err := f.s.CreateControl(typeAndFlags, x, y, w, h, title)
	if err != nil {
		return NoControl, err
	}
	f.ids = append(f.ids, id)
	return id, nil
}

func (f *form) close() error {
	for i := len(f.ids) - 1; i >= 0; i-- {
		f.s.DeleteControl(f.ids[i])
	}
	f.ids = nil
	return f.s.CloseWindow(f.win)
}

// waitCommand runs the loop until one of ids reports a command.
func (f *form) waitCommand(ctx context.Context, ids ...int) (int, error) {
	for {
		ev, err := f.s.WaitMessage(ctx)
		if err != nil {
			return NoControl, err
		}
		if ev.Code != EventCommand {
			continue
		}
		for _, id := range ids {
			if ev.ID == id {
				return id, nil
			}
		}
	}
}

// Alert shows message with an OK button and waits until it is dismissed.
func Alert(ctx context.Context, s *Session, message string) (err error) {
	f, err := openForm(s, 40, 60, 240, 80)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.close()) }()

	if _, err = f.add(ui.TypeLabel, 50, 70, 220, 0, message); err != nil {
		return err
	}
	ok, err := f.add(ui.TypePushButton|ui.FlagDefault|ui.FlagCancel, 135, 118, 50, 14, "OK")
	if err != nil {
		return err
	}
	_, err = f.waitCommand(ctx, ok)
	return err
}

// Confirm asks a yes/no question. Enter picks yes and Escape picks no.
func Confirm(ctx context.Context, s *Session, message, yes, no string) (answer bool, err error) {
	f, err := openForm(s, 40, 60, 240, 80)
	if err != nil {
		return false, err
	}
	defer func() { err = errors.Join(err, f.close()) }()

	if _, err = f.add(ui.TypeLabel, 50, 70, 220, 0, message); err != nil {
		return false, err
	}
	yesID, err := f.add(ui.TypePushButton|ui.FlagDefault, 90, 118, ui.ButtonAutoWidth, 14, yes)
	if err != nil {
		return false, err
	}
	noID, err := f.add(ui.TypePushButton|ui.FlagCancel, 180, 118, ui.ButtonAutoWidth, 14, no)
	if err != nil {
		return false, err
	}

	id, err := f.waitCommand(ctx, yesID, noID)
	return err == nil && id == yesID, err
}

// InputText asks for a line of text. ok is false when the prompt was
// cancelled.
func InputText(ctx context.Context, s *Session, prompt, initial string) (value string, ok bool, err error) {
	f, err := openForm(s, 40, 60, 240, 80)
	if err != nil {
		return "", false, err
	}
	defer func() { err = errors.Join(err, f.close()) }()

	if _, err = f.add(ui.TypeLabel, 50, 68, 220, 0, prompt); err != nil {
		return "", false, err
	}
	box, err := f.add(ui.TypeTextBox, 50, 92, 220, 0, initial)
	if err != nil {
		return "", false, err
	}
	okID, err := f.add(ui.TypePushButton|ui.FlagDefault, 110, 118, 45, 14, "OK")
	if err != nil {
		return "", false, err
	}
	cancelID, err := f.add(ui.TypePushButton|ui.FlagCancel, 165, 118, 45, 14, "Cancel")
	if err != nil {
		return "", false, err
	}

	id, err := f.waitCommand(ctx, okID, cancelID)
	if err != nil || id != okID {
		return "", false, err
	}
	s.SendControlMessage(box, ui.MsgGetText, 0, &value)
	return value, true, nil
}

// ChooseFromList lets the player pick one of items and returns its index.
// ok is false when the prompt was cancelled or nothing was selected.
func ChooseFromList(ctx context.Context, s *Session, title string, items []string) (index int, ok bool, err error) {
	f, err := openForm(s, 60, 30, 200, 140)
	if err != nil {
		return -1, false, err
	}
	defer func() { err = errors.Join(err, f.close()) }()

	if _, err = f.add(ui.TypeLabel, 70, 36, 180, 0, title); err != nil {
		return -1, false, err
	}
	list, err := f.add(ui.TypeListBox, 70, 52, 180, 88, "")
	if err != nil {
		return -1, false, err
	}
	for _, it := range items {
		s.SendControlMessage(list, ui.MsgAddItem, 0, it)
	}
	if len(items) > 0 {
		s.SendControlMessage(list, ui.MsgSetCurSel, 0, nil)
	}
	okID, err := f.add(ui.TypePushButton|ui.FlagDefault, 100, 148, 45, 14, "OK")
	if err != nil {
		return -1, false, err
	}
	cancelID, err := f.add(ui.TypePushButton|ui.FlagCancel, 175, 148, 45, 14, "Cancel")
	if err != nil {
		return -1, false, err
	}

	id, err := f.waitCommand(ctx, okID, cancelID)
	if err != nil || id != okID {
		return -1, false, err
	}
	index = s.SendControlMessage(list, ui.MsgGetCurSel, 0, nil)
	return index, index >= 0, nil
}
