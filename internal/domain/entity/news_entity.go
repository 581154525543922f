package entity

import "time"

// Category is one of the fixed sections an article is filed under.
type Category string

const (
	CategoryTechnology    Category = "Technology"
	CategorySports        Category = "Sports"
	CategoryPolitics      Category = "Politics"
	CategoryEntertainment Category = "Entertainment"
	CategoryScience       Category = "Science"
	CategoryHealth        Category = "Health"
	CategoryBusiness      Category = "Business"
	CategoryGeneral       Category = "General"

	// CategoryAll is the list filter that matches every category.
	CategoryAll Category = "All"
)

// Categories lists the valid categories in display order.
var Categories = []Category{
	CategoryTechnology,
	CategorySports,
	CategoryPolitics,
	CategoryEntertainment,
	CategoryScience,
	CategoryHealth,
	CategoryBusiness,
	CategoryGeneral,
}

// Valid reports whether c is one of Categories. CategoryAll is not a valid category.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// NewsItem is a published article.
//
// AuthorID is a weak reference to User.ID; nothing checks it still resolves.
// AuthorName is a snapshot of the author's name when the item was created and is
// not kept in sync afterwards.
type NewsItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Category   Category  `json:"category"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Comments   []Comment `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Comment belongs to exactly one NewsItem and is append-only.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
