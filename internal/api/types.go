// Package api is the thin data-fetching layer between the screens and the
// game server: JSON over HTTP, plus the transformers that normalize wire
// payloads into domain types. It supplies paging.Source implementations;
// pagination state itself lives in the paging package.
package api

// VersionResponse is the payload of GET /v1/version.
type VersionResponse struct {
	APIVersion string `json:"api_version"`
	ServerName string `json:"server_name"`
}

// MonsterRecord is the wire shape of one sanctuary monster. Field names
// follow the server's snake_case convention and are normalized by
// monsterFromRecord.
type MonsterRecord struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	SpeciesSlug string `json:"species_slug"`
	Element     string `json:"element"`
	RarityTier  int    `json:"rarity_tier"`
	Level       int    `json:"level"`
	BondLevel   int    `json:"bond_level"`
	CaughtAt    string `json:"caught_at"`
}

// MonsterListResponse is the known-total envelope for GET /v1/sanctuary/monsters.
type MonsterListResponse struct {
	Items []MonsterRecord `json:"items"`
	Total int             `json:"total"`
}

// DungeonRunRecord is the wire shape of one dungeon run.
type DungeonRunRecord struct {
	ID          string `json:"id"`
	DungeonSlug string `json:"dungeon_slug"`
	Depth       int    `json:"depth"`
	Outcome     string `json:"outcome"`
	GoldFound   int    `json:"gold_found"`
	StartedAt   string `json:"started_at"`
}

// DungeonRunListResponse is the open-ended envelope for GET /v1/dungeon/runs.
// The run chronicle is a stream: the server reports has_more instead of a
// total count.
type DungeonRunListResponse struct {
	Items   []DungeonRunRecord `json:"items"`
	HasMore bool               `json:"has_more"`
}

// ExpeditionRecord is the wire shape of one home-base expedition.
type ExpeditionRecord struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Squad        []string `json:"squad"`
	DurationSecs int      `json:"duration_secs"`
	Reward       string   `json:"reward"`
	Complete     bool     `json:"complete"`
}

// ExpeditionListResponse is the known-total envelope for GET /v1/base/expeditions.
type ExpeditionListResponse struct {
	Items []ExpeditionRecord `json:"items"`
	Total int                `json:"total"`
}

// ErrorResponse is the server's error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
