package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// Decision is the outcome the policy chose for a file and, when a rename is
// required, the name the file must be given.
type Decision struct {
	Outcome Outcome
	// Expected is the checksum embedded in the name, nil when there is none.
	Expected *Checksum
	// NewName is the base name to rename to. Empty unless Outcome is
	// OutcomeUpdated or OutcomeAdded.
	NewName string
}

// NeedsRename reports whether applying the decision requires a rename.
func (d Decision) NeedsRename() bool {
	return d.NewName != ""
}

// Reconcile decides how the base name must change so that it carries the computed checksum.
// It performs no I/O.
func Reconcile(name string, computed Checksum, mode Mode) (Decision, error) {
	token, ok := ExtractToken(name)
	if !ok {
		if !mode.Add {
			return Decision{Outcome: OutcomeSkipped}, nil
		}
		newName, err := InsertToken(name, computed)
		if err != nil {
			return Decision{}, err
		}
		return Decision{Outcome: OutcomeAdded, NewName: newName}, nil
	}

	expected := token.Value
	d := Decision{Expected: &expected}

	switch {
	case token.Value == computed:
		d.Outcome = OutcomeOk
	case !mode.Update:
		d.Outcome = OutcomeMismatch
	default:
		newName, err := ReplaceToken(name, token, computed)
		if err != nil {
			return Decision{}, err
		}
		d.Outcome = OutcomeUpdated
		d.NewName = newName
	}
	return d, nil
}

// InsertToken places the token of c immediately before the final extension separator of name.
// Names without an extension, including dotfiles such as ".profile", have no anchor.
func InsertToken(name string, c Checksum) (string, error) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", errors.Join(ErrNoExtensionAnchor, zerr.With(zerr.New("cannot place checksum token"), "name", name))
	}
	return name[:i] + c.Token() + name[i:], nil
}

// ReplaceToken swaps the text of tok in name for the token of c.
// If that leaves the name unchanged the token is inserted at the extension instead.
func ReplaceToken(name string, tok Token, c Checksum) (string, error) {
	newName := name[:tok.Start] + c.Token() + name[tok.End:]
	if newName != name {
		return newName, nil
	}
	return InsertToken(name, c)
}
