package domain

// EntrySummary são os números exibidos no painel de resumo
type EntrySummary struct {
	EntryCount        int    `json:"entryCount"`
	TotalVoiceLines   int    `json:"totalVoiceLines"`
	TotalBTS          int    `json:"totalBts"`
	TotalIoT          int    `json:"totalIot"`
	TotalHSI          int    `json:"totalHsi"`
	TotalLines        int    `json:"totalLines"`
	TotalAccessories  string `json:"totalAccessories"`
	TotalProtection   int    `json:"totalProtection"`
	ProtectionPercent string `json:"protectionPercent"`
	AverageMRC        string `json:"averageMrc"`
	Latest            *Entry `json:"latest,omitempty"`
}

// Tip é a dica de coaching exibida no dashboard.
// Degraded indica que o texto é uma mensagem de fallback e não veio do modelo.
type Tip struct {
	Text     string `json:"tip"`
	Degraded bool   `json:"degraded"`
}
