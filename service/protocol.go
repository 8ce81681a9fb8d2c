package service

// 请求、应答均用 MPSZ 写法传递牌，例如 "123m406p77z"

type HandReq struct {
	Hand    string `json:"hand"`
	Visible string `json:"visible,omitempty"`
}

type ShantenAck struct {
	Shanten         int    `json:"shanten"`
	Shape           string `json:"shape"`
	Standard        int    `json:"standard"`
	SevenPairs      int    `json:"sevenPairs"`
	ThirteenOrphans int    `json:"thirteenOrphans"`
}

type UkeireAck struct {
	Waits  []string       `json:"waits"`
	Counts map[string]int `json:"counts,omitempty"`
	Total  int            `json:"total"`
}

type CandidateAck struct {
	Discard string   `json:"discard"`
	Shanten int      `json:"shanten"`
	Total   int      `json:"total"`
	Loss    int      `json:"loss"`
	Accept  []string `json:"accept"`
}

type RankAck struct {
	Best       []string       `json:"best"`
	Candidates []CandidateAck `json:"candidates"`
}

type ReviewReq struct {
	Hand    string `json:"hand"`
	Visible string `json:"visible,omitempty"`
	Discard string `json:"discard"`
}

type ReviewAck struct {
	Discard     string   `json:"discard"`
	DiscardName string   `json:"discardName"`
	Verdict     string   `json:"verdict"`
	Shanten     int      `json:"shanten"`
	ShantenLoss int      `json:"shantenLoss"`
	UkeireLoss  int      `json:"ukeireLoss"`
	Best        []string `json:"best"`
}

type ScenarioListReq struct{}

type ScenarioAck struct {
	Name    string `json:"name"`
	Hand    string `json:"hand"`
	Visible string `json:"visible,omitempty"`
	Note    string `json:"note,omitempty"`
}

type ScenarioListAck struct {
	Scenarios []ScenarioAck `json:"scenarios"`
}

type AnswerReq struct {
	Scenario string `json:"scenario"`
	Discard  string `json:"discard"`
}

type SimulateReq struct {
	Hand    string `json:"hand"`
	Visible string `json:"visible,omitempty"`
	Draws   int    `json:"draws,omitempty"`
	Runs    int    `json:"runs,omitempty"`
}

type SimulateAck struct {
	Runs         int     `json:"runs"`
	TenpaiRate   float64 `json:"tenpaiRate"`
	CompleteRate float64 `json:"completeRate"`
	AvgDraws     float64 `json:"avgDraws"`
}
