package usecase

// RecipientEmail resolves "the other side" of a two-party conversation. When
// filtering the current user leaves exactly one participant, that is the
// recipient. Degenerate participant sets (self-conversation, fewer or more
// than two distinct entries) fall back to the first participant unfiltered;
// that is a deliberate permissive policy, not an error.
func RecipientEmail(participants []string, currentEmail string) string {
	if len(participants) == 0 {
		return ""
	}

	others := make([]string, 0, len(participants))
	for _, email := range participants {
		if email != currentEmail {
			others = append(others, email)
		}
	}

	if len(others) == 1 && len(participants) == 2 {
		return others[0]
	}
	return participants[0]
}
