package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
)

// Categories lists all categories with their parent relationship.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.api.ListCategories(ctx)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories yet.")
		return nil
	}
	for _, cat := range categories {
		line := fmt.Sprintf("%4d  %s", cat.ID, cat.Name)
		if cat.ParentID != nil {
			line += fmt.Sprintf(" (parent %d)", *cat.ParentID)
		}
		if cat.Description != nil {
			line += "  " + *cat.Description
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// AddCategory creates a category, optionally nested under a parent.
func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter category name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}
	parentText, err := getSimpleText(a.reader, "Parent category id (blank for top level)", a.out)
	if err != nil {
		return err
	}

	in := models.CategoryCreate{Name: name}
	if description != "" {
		in.Description = &description
	}
	if parentText != "" {
		parentID, err := strconv.ParseInt(parentText, 10, 64)
		if err != nil {
			fmt.Fprintf(a.out, "Not a valid id: %q\n", parentText)
			return err
		}
		in.ParentID = &parentID
	}

	cat, err := a.api.CreateCategory(ctx, in)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Created category %q (id %d).\n", cat.Name, cat.ID)
	return nil
}
