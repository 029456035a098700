package cli

import (
	"context"
	"fmt"
)

// Tags lists tags, optionally narrowed by a search string.
func (a *App) Tags(ctx context.Context) error {
	search, err := getSimpleText(a.reader, "Search tags (blank for all)", a.out)
	if err != nil {
		return err
	}

	tags, err := a.api.ListTags(ctx, search, 50)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No tags found.")
		return nil
	}
	for _, tag := range tags {
		fmt.Fprintf(a.out, "%4d  #%s\n", tag.ID, tag.Name)
	}
	return nil
}

// AddTags creates tags in bulk from a comma-separated list. Names that
// already exist are returned as is by the backend, so the command doubles
// as a lookup.
func (a *App) AddTags(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Tags, comma-separated", a.out)
	if err != nil {
		return err
	}

	names := parseNameList(text)
	if len(names) == 0 {
		fmt.Fprintln(a.out, "Nothing to add.")
		return nil
	}

	tags, err := a.api.CreateTagsBulk(ctx, names)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	for _, tag := range tags {
		fmt.Fprintf(a.out, "%4d  #%s\n", tag.ID, tag.Name)
	}
	return nil
}
