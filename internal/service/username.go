package service

import (
	"fmt"
	"math/rand"
)

// Word lists for generated usernames. Combinations stay within the
// 15-character username bound: longest adjective (6) + longest noun
// (6) + 2 digits.
var (
	usernameAdjectives = []string{
		"brisk", "calm", "clever", "eager", "fair", "gentle", "keen",
		"lively", "mellow", "nimble", "quick", "quiet", "solid", "swift",
		"vivid", "warm", "wise", "witty", "bold", "bright",
	}
	usernameNouns = []string{
		"badger", "crane", "falcon", "fox", "heron", "lark", "lynx",
		"marten", "otter", "owl", "panda", "raven", "robin", "seal",
		"finch", "stoat", "swan", "tiger", "vole", "wren",
	}
)

// generateUsername samples a random adjective-noun-digits candidate.
// Uniqueness is not guaranteed here; the caller checks the store and
// the store's unique index is the final arbiter.
func generateUsername() string {
	adjective := usernameAdjectives[rand.Intn(len(usernameAdjectives))]
	noun := usernameNouns[rand.Intn(len(usernameNouns))]
	return fmt.Sprintf("%s%s%02d", adjective, noun, rand.Intn(100))
}
