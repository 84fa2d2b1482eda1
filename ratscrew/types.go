package ratscrew

// NoPlayer marks an unset player index.
const NoPlayer = -1

// Phase 游戏阶段
type Phase byte

const (
	PhaseSetup          Phase = 0
	PhaseAwaitingAction Phase = 1
	PhaseGameWon        Phase = 2
)

var PhaseDictionary = map[Phase]string{
	PhaseSetup:          "setup",
	PhaseAwaitingAction: "awaiting_action",
	PhaseGameWon:        "game_won",
}

func (p Phase) String() string { return PhaseDictionary[p] }

// ActionType is the kind of key press behind an event.
type ActionType byte

const (
	ActionNone ActionType = 0
	ActionPlay ActionType = 1
	ActionSlap ActionType = 2
)

var ActionTypeDictionary = map[ActionType]string{
	ActionNone: "NONE",
	ActionPlay: "PLAY",
	ActionSlap: "SLAP",
}

func (a ActionType) String() string { return ActionTypeDictionary[a] }

// WinReason explains how a round stack changed hands.
type WinReason byte

const (
	WinNone       WinReason = 0
	WinSlap       WinReason = 1 // valid double or sandwich
	WinFaceCard   WinReason = 2 // face-card countdown ran out
	WinEmptyHand  WinReason = 3 // responder ran out of cards while owing
	WinNoPlayLeft WinReason = 4 // every card is on the table
)

var WinReasonDictionary = map[WinReason]string{
	WinNone:       "none",
	WinSlap:       "slap",
	WinFaceCard:   "face_card",
	WinEmptyHand:  "empty_hand",
	WinNoPlayLeft: "no_play_left",
}

func (w WinReason) String() string { return WinReasonDictionary[w] }
