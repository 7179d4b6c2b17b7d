package model

import (
	"strings"
	"time"
)

type Availability string

const (
	Available  Availability = "available"
	CheckedOut Availability = "checked_out"
)

type CheckoutStatus string

const (
	StatusCheckedOut CheckoutStatus = "checked_out"
	StatusReturned   CheckoutStatus = "returned"
)

// EntityKind selects one of the three name-keyed catalog tables.
type EntityKind string

const (
	KindAuthor    EntityKind = "author"
	KindPublisher EntityKind = "publisher"
	KindCategory  EntityKind = "category"
)

// Date marshals as yyyy-mm-dd.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type Book struct {
	ID              int          `json:"id" db:"id"`
	Title           string       `json:"title" db:"title"`
	Description     string       `json:"description" db:"description"`
	CoverImage      *string      `json:"coverImage" db:"cover_image"`
	PublicationDate time.Time    `json:"publicationDate" db:"publication_date"`
	ISBN            string       `json:"isbn" db:"isbn"`
	PageCount       int          `json:"pageCount" db:"page_count"`
	AuthorID        int          `json:"authorId" db:"author_id"`
	PublisherID     int          `json:"publisherId" db:"publisher_id"`
	CategoryID      int          `json:"categoryId" db:"category_id"`
	Availability    Availability `json:"availability" db:"availability"`
	CreatedBy       int          `json:"-" db:"created_by"`
	UpdatedBy       int          `json:"-" db:"updated_by"`
	DeletedBy       *int         `json:"-" db:"deleted_by"`
	DeletedAt       *time.Time   `json:"-" db:"deleted_at"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`
}

// CatalogEntity is the shared shape of authors, publishers and categories.
type CatalogEntity struct {
	ID        int        `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	CreatedBy int        `json:"-" db:"created_by"`
	UpdatedBy int        `json:"-" db:"updated_by"`
	DeletedBy *int       `json:"-" db:"deleted_by"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

type CheckoutRecord struct {
	ID           int            `json:"id" db:"id"`
	BookID       int            `json:"bookId" db:"book_id"`
	UserID       int            `json:"userId" db:"user_id"`
	Status       CheckoutStatus `json:"status" db:"status"`
	CheckoutDate time.Time      `json:"checkoutDate" db:"checkout_date"`
	DueDate      time.Time      `json:"dueDate" db:"due_date"`
	ReturnedDate *time.Time     `json:"returnedDate" db:"returned_date"`
}

type Review struct {
	ID         int       `json:"id" db:"id"`
	BookID     int       `json:"bookId" db:"book_id"`
	UserID     int       `json:"userId" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"reviewText" db:"review_text"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type ReviewWithUser struct {
	Review
	UserName string `json:"userName" db:"user_name"`
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// BookSummary is the list read-model: one row per active book with the
// author name and the recomputed average rating.
type BookSummary struct {
	ID           int          `json:"id" db:"id"`
	Title        string       `json:"title" db:"title"`
	Description  string       `json:"description" db:"description"`
	CoverImage   *string      `json:"coverImage" db:"cover_image"`
	AuthorName   string       `json:"authorName" db:"author_name"`
	Availability Availability `json:"availability" db:"availability"`
	AvgRating    float64      `json:"avgRating" db:"avg_rating"`
}

// BookDetails joins the book with its catalog names, the latest
// checkout and all reviews. Catalog names are nullable: a referenced
// entity may have been soft-deleted since the book was created.
type BookDetails struct {
	ID              int          `json:"id" db:"id"`
	Title           string       `json:"title" db:"title"`
	Description     string       `json:"description" db:"description"`
	CoverImage      *string      `json:"coverImage" db:"cover_image"`
	PublicationDate time.Time    `json:"publicationDate" db:"publication_date"`
	ISBN            string       `json:"isbn" db:"isbn"`
	PageCount       int          `json:"pageCount" db:"page_count"`
	AuthorName      *string      `json:"authorName" db:"author_name"`
	PublisherName   *string      `json:"publisherName" db:"publisher_name"`
	CategoryName    *string      `json:"categoryName" db:"category_name"`
	Availability    Availability `json:"availability" db:"availability"`
	CheckoutDate    *time.Time   `json:"checkoutDate" db:"checkout_date"`
	DueDate         *time.Time   `json:"dueDate" db:"due_date"`
	CheckoutStatus  *string      `json:"checkoutStatus" db:"checkout_status"`

	AvgRating float64          `json:"avgRating" db:"-"`
	Reviews   []ReviewWithUser `json:"reviews" db:"-"`
}

type CreateBookRequest struct {
	Title           string `json:"title" form:"title" validate:"required,max=25"`
	Description     string `json:"description" form:"description" validate:"required,min=10"`
	PublicationDate Date   `json:"publicationDate" form:"publicationDate" validate:"required,notfuture"`
	ISBN            string `json:"isbn" form:"isbn" validate:"required,numeric,max=13"`
	PageCount       int    `json:"pageCount" form:"pageCount" validate:"required,min=1,max=25000"`
	AuthorID        int    `json:"authorId" form:"authorId" validate:"required"`
	PublisherID     int    `json:"publisherId" form:"publisherId" validate:"required"`
	CategoryID      int    `json:"categoryId" form:"categoryId" validate:"required"`
}

type CatalogEntityRequest struct {
	Name string `json:"name" validate:"required,max=25,alphaspace"`
}

type ReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required,min=5,max=100"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Username string `json:"username" validate:"required,max=25"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=librarian customer"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

// CatalogEntityResponse reports whether the create path actually
// created the entity or found an active one under the same name.
type CatalogEntityResponse struct {
	CatalogEntity
	Created bool   `json:"created"`
	Message string `json:"message,omitempty"`
}
