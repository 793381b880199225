package handlers

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func isValidTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
