package database

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Word lists used to filter team names. The app is aimed at German
// primary-school classes, so both the German and English lists are seeded.
var blockedWordsURLs = []string{
	"https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/de",
	"https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en",
}

// SeedBlockedWords populates the blocked words table used for team-name
// validation. Runs once; a populated table is left alone.
func (db *DB) SeedBlockedWords() error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM blocked_words").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check blocked words count: %w", err)
	}

	if count > 0 {
		log.Printf("Team name filter already populated with %d words", count)
		return nil
	}

	log.Println("Downloading blocked words lists...")

	client := &http.Client{Timeout: 30 * time.Second}
	wordsAdded := 0

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := db.Dialect.RewriteQuery("INSERT INTO blocked_words (word) VALUES (?)")
	stmt, err := tx.Prepare(insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, url := range blockedWordsURLs {
		resp, err := client.Get(url)
		if err != nil {
			return fmt.Errorf("failed to download blocked words list: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("bad status code from blocked words URL: %d", resp.StatusCode)
		}

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			word := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if word == "" {
				continue
			}
			if _, err := stmt.Exec(word); err != nil {
				// Skip duplicates or errors, continue adding others
				continue
			}
			wordsAdded++
		}
		err = scanner.Err()
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("error reading blocked words: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Team name filter populated with %d words", wordsAdded)
	return nil
}

// IsBlockedWord checks if a single word is in the blocked list
func (db *DB) IsBlockedWord(word string) (bool, error) {
	cleanWord := strings.TrimSpace(strings.ToLower(word))

	var count int
	query := "SELECT COUNT(*) FROM blocked_words WHERE word = ?"
	err := db.QueryRow(query, cleanWord).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked word: %w", err)
	}
	return count > 0, nil
}

// ValidateTeamName checks every word of a proposed team name against the
// blocked list and returns the offending words, if any.
func (db *DB) ValidateTeamName(name string) ([]string, error) {
	var blocked []string
	for _, word := range strings.Fields(name) {
		isBlocked, err := db.IsBlockedWord(word)
		if err != nil {
			return nil, err
		}
		if isBlocked {
			blocked = append(blocked, word)
		}
	}
	return blocked, nil
}
