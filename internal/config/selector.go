package config

import "github.com/monify-labs/sysfetch/pkg/models"

// ActiveCategories returns the enabled categories in declaration order
func (c *Config) ActiveCategories() []models.Category {
	var active []models.Category
	for _, cat := range models.Categories() {
		if c.Enabled(cat) {
			active = append(active, cat)
		}
	}
	return active
}
