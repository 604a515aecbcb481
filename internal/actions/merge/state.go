package merge

// State is the phase a merge run is in
type State int

const (
	StateIdle State = iota
	StateValidatedRepo
	StateMergingSteps
	StateEnsuringCombinedBranch
	StateMergingIntoCombined
	StatePushing
	StateRestoringOriginalBranch
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:                    "idle",
	StateValidatedRepo:           "validated-repo",
	StateMergingSteps:            "merging-steps",
	StateEnsuringCombinedBranch:  "ensuring-combined-branch",
	StateMergingIntoCombined:     "merging-into-combined",
	StatePushing:                 "pushing",
	StateRestoringOriginalBranch: "restoring-original-branch",
	StateDone:                    "done",
	StateFailed:                  "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
