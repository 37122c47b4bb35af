package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "dayboard/internal/errors"
	"dayboard/internal/model"
)

const (
	minPasswordLength = 6
	// bcrypt rejects longer input.
	maxPasswordBytes = 72
	// MySQL TEXT column capacity.
	maxTextBytes = 65535
	// VARCHAR(255) counts characters, not bytes.
	maxNameChars = 255
)

// NewTodo is the create payload. Empty strings mean "not supplied".
type NewTodo struct {
	Text     string
	DueDate  string
	Category string
	Priority string
	Tags     []string
}

// TodoPatch carries only the fields the client sent.
type TodoPatch struct {
	Text      *string
	DueDate   *string
	Category  *string
	Priority  *string
	Completed *bool
	Tags      *[]string
}

// GoalPatch carries only the fields the client sent.
type GoalPatch struct {
	Text      *string
	Completed *bool
}

// HabitPatch carries only the fields the client sent.
type HabitPatch struct {
	Name      *string
	Completed *bool
}

// ProfileUpdate carries only the profile fields the client sent.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
}

// NormalizeEmail trims and lower-cases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(name, email, password string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return "", "", apperrors.Validation("name, email and password are required")
	}
	if len(password) < minPasswordLength {
		return "", "", apperrors.Validation("password must be at least 6 characters")
	}
	if len(password) > maxPasswordBytes {
		return "", "", apperrors.Validation("password must be at most 72 bytes")
	}
	if utf8.RuneCountInString(name) > maxNameChars {
		return "", "", apperrors.Validation("name must be at most 255 characters")
	}
	return name, email, nil
}

func validateProfileUpdate(u ProfileUpdate) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return nil, apperrors.Validation("name cannot be empty")
		}
		if utf8.RuneCountInString(name) > maxNameChars {
			return nil, apperrors.Validation("name must be at most 255 characters")
		}
		fields["name"] = name
	}
	if u.Avatar != nil {
		fields["avatar"] = strings.TrimSpace(*u.Avatar)
	}
	return fields, nil
}

func requiredText(value, field string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperrors.Validation(field + " is required")
	}
	if len(v) > maxTextBytes {
		return "", apperrors.Validation(fmt.Sprintf("%s must be at most %d bytes", field, maxTextBytes))
	}
	return v, nil
}

func requiredName(value, field string) (string, error) {
	v, err := requiredText(value, field)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(v) > maxNameChars {
		return "", apperrors.Validation(fmt.Sprintf("%s must be at most %d characters", field, maxNameChars))
	}
	return v, nil
}

func parseCategory(raw string) (model.Category, error) {
	c := model.Category(raw)
	if !c.Valid() {
		return "", apperrors.Validation("invalid category: must be one of Work, Personal, Study, Other")
	}
	return c, nil
}

func parsePriority(raw string) (model.Priority, error) {
	p := model.Priority(raw)
	if !p.Valid() {
		return "", apperrors.Validation("invalid priority: must be one of High, Medium, Low")
	}
	return p, nil
}

func cleanTags(tags []string) model.Tags {
	out := make(model.Tags, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func optionalDate(raw string) *string {
	d := strings.TrimSpace(raw)
	if d == "" {
		return nil
	}
	return &d
}

// validateNewTodo turns a create payload into a record, applying the
// Work/Medium defaults for absent enums.
func validateNewTodo(userID uuid.UUID, in NewTodo) (*model.Todo, error) {
	text, err := requiredText(in.Text, "todo text")
	if err != nil {
		return nil, err
	}

	category := model.CategoryWork
	if in.Category != "" {
		if category, err = parseCategory(in.Category); err != nil {
			return nil, err
		}
	}

	priority := model.PriorityMedium
	if in.Priority != "" {
		if priority, err = parsePriority(in.Priority); err != nil {
			return nil, err
		}
	}

	return &model.Todo{
		UserID:   userID,
		Text:     text,
		DueDate:  optionalDate(in.DueDate),
		Category: category,
		Priority: priority,
		Tags:     cleanTags(in.Tags),
	}, nil
}

// validateTodoPatch returns the column updates for the supplied fields.
// An empty dueDate clears it.
func validateTodoPatch(p TodoPatch) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if p.Text != nil {
		text, err := requiredText(*p.Text, "todo text")
		if err != nil {
			return nil, err
		}
		fields["text"] = text
	}
	if p.DueDate != nil {
		fields["due_date"] = optionalDate(*p.DueDate)
	}
	if p.Category != nil {
		c, err := parseCategory(*p.Category)
		if err != nil {
			return nil, err
		}
		fields["category"] = c
	}
	if p.Priority != nil {
		pr, err := parsePriority(*p.Priority)
		if err != nil {
			return nil, err
		}
		fields["priority"] = pr
	}
	if p.Completed != nil {
		fields["completed"] = *p.Completed
	}
	if p.Tags != nil {
		fields["tags"] = cleanTags(*p.Tags)
	}
	return fields, nil
}

func validateGoalPatch(p GoalPatch) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if p.Text != nil {
		text, err := requiredText(*p.Text, "goal text")
		if err != nil {
			return nil, err
		}
		fields["text"] = text
	}
	if p.Completed != nil {
		fields["completed"] = *p.Completed
	}
	return fields, nil
}

func validateHabitPatch(p HabitPatch) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if p.Name != nil {
		name, err := requiredName(*p.Name, "habit name")
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if p.Completed != nil {
		fields["completed"] = *p.Completed
	}
	return fields, nil
}
