package shell

// recordHistory prepends a line to the recall list and resets the
// cursor. Consecutive duplicates collapse.
func (s *Session) recordHistory(line string) {
	if len(s.History) == 0 || s.History[0] != line {
		s.History = append([]string{line}, s.History...)
	}
	s.histCursor = -1
}

// HistoryPrev steps backward through history (toward older entries) and
// returns the recalled line. ok is false when there is nothing older.
func (s *Session) HistoryPrev() (string, bool) {
	if s.histCursor+1 >= len(s.History) {
		return "", false
	}
	s.histCursor++
	return s.History[s.histCursor], true
}

// HistoryNext steps forward again. At the newest entry it returns an
// empty line so the caller can restore the prompt.
func (s *Session) HistoryNext() (string, bool) {
	if s.histCursor < 0 {
		return "", false
	}
	s.histCursor--
	if s.histCursor < 0 {
		return "", true
	}
	return s.History[s.histCursor], true
}
