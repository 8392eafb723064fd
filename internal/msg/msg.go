// Package msg defines the message type that flows between the input layer,
// the screen stack and the engine. Messages are small comparable values and
// carry no ownership, so they can be copied, queued and compared freely.
package msg

import "fmt"

// Kind identifies the variant of a Msg.
type Kind uint8

const (
	KindNoOp Kind = iota
	KindExit
	KindTick
	KindStartGame
	KindMenuCommand
	KindPopState
	KindShowGameOver
	KindShowWinScreen
	KindShowCredits
	KindShowOptions
	KindButtonPressed
	KindButtonReleased
	KindGameCommand
	KindOptionsSelect
	KindOptionsSet
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNoOp:
		return "NoOp"
	case KindExit:
		return "Exit"
	case KindTick:
		return "Tick"
	case KindStartGame:
		return "StartGame"
	case KindMenuCommand:
		return "MenuCommand"
	case KindPopState:
		return "PopState"
	case KindShowGameOver:
		return "ShowGameOver"
	case KindShowWinScreen:
		return "ShowWinScreen"
	case KindShowCredits:
		return "ShowCredits"
	case KindShowOptions:
		return "ShowOptions"
	case KindButtonPressed:
		return "ButtonPressed"
	case KindButtonReleased:
		return "ButtonReleased"
	case KindGameCommand:
		return "GameCommand"
	case KindOptionsSelect:
		return "OptionsSelect"
	case KindOptionsSet:
		return "OptionsSet"
	default:
		return "Unknown"
	}
}

// MenuAction is the payload of a KindMenuCommand message.
type MenuAction uint8

const (
	ToMainMenu MenuAction = iota
	ShowGameMenu
	ResumeGame
)

// String returns a human-readable name for the menu action.
func (a MenuAction) String() string {
	switch a {
	case ToMainMenu:
		return "ToMainMenu"
	case ShowGameMenu:
		return "ShowGameMenu"
	case ResumeGame:
		return "ResumeGame"
	default:
		return "Unknown"
	}
}

// Command is the payload of a KindGameCommand message.
type Command uint8

const (
	StartMovement Command = iota
	StopMovement
	Pause
	Resume
	Menu
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case StartMovement:
		return "StartMovement"
	case StopMovement:
		return "StopMovement"
	case Pause:
		return "Pause"
	case Resume:
		return "Resume"
	case Menu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Result summarizes a finished play session. It travels with
// ShowGameOver and ShowWinScreen.
type Result struct {
	FinalSize float64
	PeakSize  float64
	PlayedMS  uint32 // Milliseconds spent unpaused
}

// Msg is the single unit of communication in the update protocol.
// Only the fields relevant to Kind are meaningful; the rest stay zero so
// that two equal messages compare equal with ==.
type Msg struct {
	Kind     Kind
	Elapsed  uint32 // KindTick: milliseconds since the previous frame
	Count    int    // KindPopState
	Menu     MenuAction
	Command  Command
	Movement Movement // KindGameCommand (Start/StopMovement), KindOptionsSelect
	Key      Key      // KindButtonPressed, KindButtonReleased, KindOptionsSet
	Result   Result   // KindShowGameOver, KindShowWinScreen
}

func NoOp() Msg        { return Msg{Kind: KindNoOp} }
func Exit() Msg        { return Msg{Kind: KindExit} }
func StartGame() Msg   { return Msg{Kind: KindStartGame} }
func ShowCredits() Msg { return Msg{Kind: KindShowCredits} }
func ShowOptions() Msg { return Msg{Kind: KindShowOptions} }

// Tick reports elapsed real time since the previous frame.
func Tick(elapsedMS uint32) Msg { return Msg{Kind: KindTick, Elapsed: elapsedMS} }

// MenuCommand wraps a menu-level navigation request.
func MenuCommand(a MenuAction) Msg { return Msg{Kind: KindMenuCommand, Menu: a} }

// PopState asks the engine to pop n screens.
func PopState(n int) Msg { return Msg{Kind: KindPopState, Count: n} }

func ShowGameOver(r Result) Msg  { return Msg{Kind: KindShowGameOver, Result: r} }
func ShowWinScreen(r Result) Msg { return Msg{Kind: KindShowWinScreen, Result: r} }

func ButtonPressed(k Key) Msg  { return Msg{Kind: KindButtonPressed, Key: k} }
func ButtonReleased(k Key) Msg { return Msg{Kind: KindButtonReleased, Key: k} }

// GameCommand wraps a command without a movement payload (Pause, Resume, Menu).
func GameCommand(c Command) Msg { return Msg{Kind: KindGameCommand, Command: c} }

// StartMoving and StopMoving build movement game commands.
func StartMoving(m Movement) Msg {
	return Msg{Kind: KindGameCommand, Command: StartMovement, Movement: m}
}

func StopMoving(m Movement) Msg {
	return Msg{Kind: KindGameCommand, Command: StopMovement, Movement: m}
}

func OptionsSelect(m Movement) Msg { return Msg{Kind: KindOptionsSelect, Movement: m} }
func OptionsSet(k Key) Msg         { return Msg{Kind: KindOptionsSet, Key: k} }

// String formats the message with its relevant payload, for logs.
func (m Msg) String() string {
	switch m.Kind {
	case KindTick:
		return fmt.Sprintf("Tick(%d)", m.Elapsed)
	case KindMenuCommand:
		return fmt.Sprintf("MenuCommand(%s)", m.Menu)
	case KindPopState:
		return fmt.Sprintf("PopState(%d)", m.Count)
	case KindButtonPressed, KindButtonReleased, KindOptionsSet:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Key)
	case KindOptionsSelect:
		return fmt.Sprintf("OptionsSelect(%s)", m.Movement)
	case KindGameCommand:
		if m.Command == StartMovement || m.Command == StopMovement {
			return fmt.Sprintf("GameCommand(%s(%s))", m.Command, m.Movement)
		}
		return fmt.Sprintf("GameCommand(%s)", m.Command)
	case KindShowGameOver, KindShowWinScreen:
		return fmt.Sprintf("%s(size=%.1f peak=%.1f)", m.Kind, m.Result.FinalSize, m.Result.PeakSize)
	default:
		return m.Kind.String()
	}
}
