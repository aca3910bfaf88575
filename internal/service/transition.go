package service

import (
	"fmt"
	"strconv"
	"strings"
)

// TransitionPolicy decides whether case may move from one status code to another
type TransitionPolicy interface {
	Allowed(from, to int) bool
}

type allowAnyTransition struct{}

// AllowAnyTransition builds policy accepting every pair, including transition to the current status
func AllowAnyTransition() TransitionPolicy {
	return allowAnyTransition{}
}

func (allowAnyTransition) Allowed(int, int) bool {
	return true
}

// TransitionTable lists allowed target status codes per source status code
type TransitionTable map[int][]int

func (t TransitionTable) Allowed(from, to int) bool {
	for _, allowed := range t[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseTransitionPolicy parses "1:2,2:3" into transition table, empty input allows any transition
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllowAnyTransition(), nil
	}

	table := make(TransitionTable)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		codes := strings.Split(pair, ":")
		if len(codes) != 2 {
			return nil, fmt.Errorf("malformed transition %q, expected from:to", pair)
		}

		from, err := strconv.Atoi(strings.TrimSpace(codes[0]))
		if err != nil {
			return nil, fmt.Errorf("malformed source status in transition %q - %w", pair, err)
		}

		to, err := strconv.Atoi(strings.TrimSpace(codes[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed target status in transition %q - %w", pair, err)
		}

		table[from] = append(table[from], to)
	}
	return table, nil
}
