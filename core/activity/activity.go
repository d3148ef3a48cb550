package activity

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goto/chrono/internal/errors"
)

const EntityActivity = "activity"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Activity is a named entity tracked time can be attributed to. Identity is
// the slug; title and description are display attributes.
type Activity struct {
	slug        string
	title       string
	description string
}

func New(slug, title, description string) (Activity, error) {
	a := Activity{
		slug:        slug,
		title:       title,
		description: description,
	}
	if err := a.validate(); err != nil {
		return Activity{}, err
	}
	return a, nil
}

func (a Activity) validate() error {
	if err := validation.Validate(a.slug,
		validation.Required,
		validation.Match(slugPattern).Error("must be lowercase kebab-case"),
	); err != nil {
		return errors.InvalidArgument(EntityActivity, "invalid slug "+a.slug+": "+err.Error())
	}
	if err := validation.Validate(a.title, validation.Required); err != nil {
		return errors.InvalidArgument(EntityActivity, "title is required for activity "+a.slug)
	}
	return nil
}

func (a Activity) Slug() string {
	return a.slug
}

func (a Activity) Title() string {
	return a.title
}

func (a Activity) Description() string {
	return a.description
}

// Equal compares activities by identity.
func (a Activity) Equal(other Activity) bool {
	return a.slug == other.slug
}

func (a Activity) String() string {
	return a.slug
}
