// Package scamgame is the scam-detection quiz: the player inspects a
// crypto project's pitch and calls it legit or a scam. Correct calls pay
// XP and coins through the game state store.
package scamgame

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"nitvon/internal/game"
)

var ErrUnknownProject = errors.New("unknown project")

const (
	correctXP    = 50
	correctCoins = 25
	wrongXP      = 10
)

type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	RedFlags    []string `json:"red_flags"`
	IsScam      bool     `json:"-"` // never serialized toward the player
}

var projects = []Project{
	{
		ID:          "legit-defi",
		Name:        "SolidSwap Protocol",
		Description: "A decentralized exchange with innovative automated market making algorithms.",
		Features: []string{
			"Open source code on GitHub",
			"Audited by reputable security firms",
			"Experienced team with LinkedIn profiles",
			"Realistic roadmap with achievable milestones",
			"Active community on Discord",
		},
		RedFlags: []string{},
		IsScam:   false,
	},
	{
		ID:          "obvious-scam",
		Name:        "MoonRocket Finance",
		Description: "Get rich quick with our revolutionary AI-powered trading bot that guarantees 1000% returns!",
		Features: []string{
			"Anonymous team members",
			"Promises guaranteed returns",
			"No technical documentation",
			"Copied whitepaper from other projects",
			"Heavy focus on referral rewards",
		},
		RedFlags: []string{
			"Unrealistic return promises",
			"Anonymous team",
			"No code repository",
			"Plagiarized content",
			"Pyramid scheme structure",
		},
		IsScam: true,
	},
	{
		ID:          "subtle-scam",
		Name:        "CryptoVault Pro",
		Description: "Advanced yield farming protocol with sustainable tokenomics and community governance.",
		Features: []string{
			"Professional website design",
			"Detailed tokenomics paper",
			"Partnership announcements",
			"Celebrity endorsements",
			"High APY rewards",
		},
		RedFlags: []string{
			"Unverified partnerships",
			"Paid celebrity endorsements",
			"Unsustainable yield rates",
			"Complex tokenomics hiding flaws",
			"No real utility for token",
		},
		IsScam: true,
	},
}

// Quiz deals rounds and scores answers.
type Quiz struct {
	mu    sync.Mutex
	rand  *rand.Rand
	store *game.Store
}

func NewQuiz(store *game.Store, seed int64) *Quiz {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Quiz{rand: rand.New(rand.NewSource(seed)), store: store}
}

// Next deals a random project to judge.
func (q *Quiz) Next() Project {
	q.mu.Lock()
	defer q.mu.Unlock()
	return projects[q.rand.Intn(len(projects))]
}

// Find returns the project with the given id.
func Find(id string) (Project, error) {
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrUnknownProject
}

type Verdict struct {
	Project     Project `json:"project"`
	Correct     bool    `json:"correct"`
	XPGained    int     `json:"xp_gained"`
	CoinsGained int     `json:"coins_gained"`
}

// Answer scores the player's call. A correct call earns 50 XP and 25
// coins; a wrong one still earns 10 XP for trying.
func (q *Quiz) Answer(projectID string, saysScam bool) (Verdict, error) {
	p, err := Find(projectID)
	if err != nil {
		return Verdict{}, err
	}

	v := Verdict{Project: p, Correct: saysScam == p.IsScam}
	if v.Correct {
		v.XPGained = correctXP
		v.CoinsGained = correctCoins
		q.store.AddXP(correctXP)
		q.store.AddCoins(correctCoins)
	} else {
		v.XPGained = wrongXP
		q.store.AddXP(wrongXP)
	}
	return v, nil
}
