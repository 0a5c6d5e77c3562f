package models

import "encoding/json"

// VoteUpdate is the payload of the vote PATCH endpoints. IncVotes is kept raw
// so a missing key and a non-integer value can be told apart.
type VoteUpdate struct {
	IncVotes json.RawMessage `json:"inc_votes" binding:"required"`
}
