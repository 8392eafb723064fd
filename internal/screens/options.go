package screens

import (
	"fmt"

	"github.com/vovakirdan/hungry-pixel/internal/core"
	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

const promptText = "Press new control"

// OptionsState lets the user rebind the four movement directions.
// Selecting a direction waits for the next key press and binds it.
type OptionsState struct {
	menu     *MenuState
	prompt   *engine.Texture
	receiver *msg.Movement // direction waiting for a key
}

// NewOptions creates the options screen from the current bindings in d.
func NewOptions(d *engine.Data) (*OptionsState, error) {
	items := make([]Item, len(msg.Movements))
	for i, mv := range msg.Movements {
		items[i] = Item{Label: bindingLabel(d.Bindings, mv), Msg: msg.OptionsSelect(mv)}
	}

	back := msg.PopState(1)
	menu, err := NewMenu(d, MenuConfig{
		Items:      items,
		Title:      "Options",
		OnEscape:   &back,
		Position:   Position{Centered: true},
		Fullscreen: true,
	})
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	prompt, err := d.Fonts.RenderTexture(engine.FontDefault, promptText, nil)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	return &OptionsState{menu: menu, prompt: prompt}, nil
}

func bindingLabel(b *engine.Bindings, mv msg.Movement) string {
	key, ok := b.KeyFor(mv)
	if !ok {
		return fmt.Sprintf("%s: ---", mv)
	}
	return fmt.Sprintf("%s: %s", mv, key)
}

// Waiting returns the direction waiting for a key, if any.
func (o *OptionsState) Waiting() (msg.Movement, bool) {
	if o.receiver == nil {
		return 0, false
	}
	return *o.receiver, true
}

// Menu returns the wrapped direction menu.
func (o *OptionsState) Menu() *MenuState { return o.menu }

// ProcessMessage implements engine.State.
func (o *OptionsState) ProcessMessage(d *engine.Data, m msg.Msg) (msg.Msg, bool) {
	switch m.Kind {
	case msg.KindTick, msg.KindButtonReleased:
		return msg.Msg{}, false

	case msg.KindButtonPressed:
		if o.receiver != nil {
			return o.ProcessMessage(d, msg.OptionsSet(m.Key))
		}
		out, ok := o.menu.ProcessMessage(d, m)
		if ok && out.Kind == msg.KindOptionsSelect {
			return o.ProcessMessage(d, out)
		}
		return out, ok

	case msg.KindOptionsSelect:
		mv := m.Movement
		o.receiver = &mv
		return msg.Msg{}, false

	case msg.KindOptionsSet:
		if o.receiver != nil {
			o.remap(d, *o.receiver, m.Key)
		}
		return msg.Msg{}, false
	}
	return m, true
}

// remap binds k to mv and refreshes every label, since the key may have
// been taken from another direction.
func (o *OptionsState) remap(d *engine.Data, mv msg.Movement, k msg.Key) {
	d.Bindings.Remap(mv, k)
	o.receiver = nil
	for i, m := range msg.Movements {
		o.menu.SetLabel(i, bindingLabel(d.Bindings, m))
	}
}

// Render implements engine.State.
func (o *OptionsState) Render(r engine.Renderer, d *engine.Data) {
	o.menu.Render(r, d)
	if o.receiver == nil {
		return
	}

	_, mh := o.menu.Dimensions()
	w, h := o.prompt.Query()
	r.Copy(o.prompt, core.NewRect((d.WindowSize.W-w)/2, d.WindowSize.H/2+mh/2+h*2, w, h))
}

// IsFullscreen implements engine.State.
func (o *OptionsState) IsFullscreen() bool { return true }
