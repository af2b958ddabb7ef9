package bank

// State is a step of the session: Start → CollectProfile → OpeningBalance →
// Menu (repeats) → Terminated.
type State int

const (
	StateStart State = iota
	StateCollectProfile
	StateOpeningBalance
	StateMenu
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCollectProfile:
		return "collect_profile"
	case StateOpeningBalance:
		return "opening_balance"
	case StateMenu:
		return "menu"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// MenuOption is a transaction menu choice as typed by the user.
type MenuOption int

const (
	OptionDeposit MenuOption = iota + 1
	OptionWithdraw
	OptionSummary
	OptionExit
)

// menuOptions is the allowed set for the menu prompt.
var menuOptions = []int{int(OptionDeposit), int(OptionWithdraw), int(OptionSummary), int(OptionExit)}

const menuPrompt = "1. Deposit\n\t2. Withdraw\n\t3. Account Summary\n\t4. Exit\n\n\tChoose an option: "
