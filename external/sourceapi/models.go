package sourceapi

import "encoding/json"

// envelope is the provider's uniform response wrapper. Any result other
// than "Success" means the data is absent, not that the call failed.
type envelope struct {
	Result  string          `json:"result"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

const resultSuccess = "Success"

type Tournament struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Season      string `json:"season"`
	CountryCode string `json:"countryCode"`
}

type PlayerRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
}

type TeamSummary struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Code      string      `json:"code"`
	Venue     string      `json:"venue"`
	CoachID   int64       `json:"coachId"`
	CoachName string      `json:"coachName"`
	Players   []PlayerRef `json:"players"`
}

// StatPair is one raw statistic as the provider ships it: an ordered
// (name, value) pair. Duplicate names may appear.
type StatPair struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type MatchResult struct {
	Matchday     int    `json:"matchday"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	Outcome      string `json:"outcome"`
}

type TeamStats struct {
	TeamID  int64         `json:"teamId"`
	Season  string        `json:"season"`
	Matches int           `json:"matchesPlayed"`
	Stats   []StatPair    `json:"stats"`
	Recent  []MatchResult `json:"recentMatches"`
}

type CareerStatLine struct {
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
	Season   string `json:"season"`
	Matches  int    `json:"matches"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Saves    int    `json:"saves"`
}

type PlayerStats struct {
	PlayerID int64            `json:"playerId"`
	Matches  int              `json:"matchesPlayed"`
	Stats    []StatPair       `json:"stats"`
	Career   []CareerStatLine `json:"career"`
}

// StaffSeasonLine is one tournament-season stat line for a coach or
// referee.
type StaffSeasonLine struct {
	TournamentID     int64   `json:"tournamentId"`
	TournamentName   string  `json:"tournamentName"`
	Season           string  `json:"season"`
	Matches          int     `json:"matches"`
	Wins             int     `json:"wins"`
	Draws            int     `json:"draws"`
	Losses           int     `json:"losses"`
	Possession       float64 `json:"possession"`
	OffensiveActions int     `json:"offensiveActions"`
	DefensiveActions int     `json:"defensiveActions"`
	YellowCards      int     `json:"yellowCards"`
	RedCards         int     `json:"redCards"`
}

type CoachStats struct {
	CoachID     int64             `json:"coachId"`
	Name        string            `json:"name"`
	Nationality string            `json:"nationality"`
	CountryCode string            `json:"countryCode"`
	Entries     []StaffSeasonLine `json:"entries"`
}

type RefereeSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	CountryCode string `json:"countryCode"`
}

type RefereeStats struct {
	RefereeID int64             `json:"refereeId"`
	Entries   []StaffSeasonLine `json:"entries"`
}

type StandingRow struct {
	Rank         int    `json:"rank"`
	TeamID       int64  `json:"teamId"`
	TeamName     string `json:"teamName"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalsDiff    int    `json:"goalsDiff"`
	Points       int    `json:"points"`
}

type StandingsGroup struct {
	Name string        `json:"name"`
	Rows []StandingRow `json:"rows"`
}

type StandingsStage struct {
	Name   string           `json:"name"`
	Groups []StandingsGroup `json:"groups"`
}

type GroupStandings struct {
	TournamentID int64            `json:"tournamentId"`
	Season       string           `json:"season"`
	Stages       []StandingsStage `json:"stages"`
}

type imagePayload struct {
	URL string `json:"url"`
}
