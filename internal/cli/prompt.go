package cli

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
)

var promptNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// promptForPage fills in the page name and title, prompting
// interactively for whichever the user did not supply.
func promptForPage(name, title string) (string, string, error) {
	if name == "" {
		prompt := &survey.Input{
			Message: "Page name",
			Help:    "Becomes the template and data file names; lowercase letters, digits, hyphens, underscores",
		}
		err := survey.AskOne(prompt, &name, survey.WithValidator(
			survey.ComposeValidators(survey.Required, matchPattern(promptNamePattern,
				"name must be lowercase letters, digits, hyphens, or underscores"))))
		if err != nil {
			return "", "", fmt.Errorf("failed to prompt for page name: %w", err)
		}
	}

	if title == "" {
		prompt := &survey.Input{
			Message: "Page title",
			Default: name,
			Help:    "Shown in the page header and the <title> element",
		}
		if err := survey.AskOne(prompt, &title); err != nil {
			return "", "", fmt.Errorf("failed to prompt for page title: %w", err)
		}
	}

	return name, title, nil
}

// matchPattern builds a survey validator from a regexp.
func matchPattern(pattern *regexp.Regexp, message string) survey.Validator {
	return func(val interface{}) error {
		s, ok := val.(string)
		if !ok || !pattern.MatchString(s) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
