package protocol

// Cmd represents a command from the presentation layer
type Cmd int

const (
	Null Cmd = iota
	Restart
	PlayCard
	DrawCard
	ChooseSuit
	State
	Error
)

var cmdNames = []string{
	"Null",
	"Restart",
	"PlayCard",
	"DrawCard",
	"ChooseSuit",
	"State",
	"Error",
}

func (c Cmd) String() string {
	return cmdNames[c]
}
