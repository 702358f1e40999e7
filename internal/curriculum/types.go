package curriculum

// ModuleStub is one entry of a generated course outline.
type ModuleStub struct {
	ModuleNumber int    `json:"module_number"`
	ModuleTitle  string `json:"module_title"`
	Description  string `json:"description"`
}

// Outline is the full answer for a topic: its ordered modules and the topic
// echoed back.
type Outline struct {
	Modules []ModuleStub `json:"modules"`
	Topic   string       `json:"topic"`
}
