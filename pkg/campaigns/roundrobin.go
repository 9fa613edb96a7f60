package campaigns

// AssignAccount maps the i-th recipient to a sender account by residue.
// For a fixed pool and ordering the assignment is deterministic, which keeps
// sender assignment stable across workflow replays.
func AssignAccount(accountIDs []int, i int) int {
	return accountIDs[i%len(accountIDs)]
}
