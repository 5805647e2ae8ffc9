package events

import (
	"time"
)

// RoleAdmin is the role that may mutate any event regardless of ownership
const RoleAdmin = "admin"

// Event represents a user-authored event post with its embedded engagement
// data. Comments and likes live inside the document so that every engagement
// mutation is a single-document atomic write at the store.
type Event struct {
	CreatedAt time.Time  `json:"created" bson:"created"`
	UpdatedAt *time.Time `json:"updated,omitempty" bson:"updated,omitempty"`
	Photo     *Photo     `json:"-" bson:"photo,omitempty"`
	ID        string     `json:"id" bson:"_id"`
	Title     string     `json:"title" bson:"title"`
	Body      string     `json:"body" bson:"body"`
	AuthorID  string     `json:"authorId" bson:"postedBy"`
	Comments  []Comment  `json:"comments" bson:"comments"`
	Likes     []string   `json:"likes" bson:"likes"`
}

// Comment is a single entry in an event's comment sequence.
// Its ID is assigned once on insertion and never changes, including
// across edits.
type Comment struct {
	CreatedAt time.Time `json:"created" bson:"created"`
	ID        string    `json:"id" bson:"id"`
	Text      string    `json:"text" bson:"text"`
	AuthorID  string    `json:"authorId" bson:"postedBy"`
}

// Photo holds an event's optional binary attachment, stored verbatim
// as part of the event document.
type Photo struct {
	ContentType string `bson:"contentType"`
	Data        []byte `bson:"data"`
}

// Caller is the authenticated identity attached to a mutating request.
// The auth middleware validates it; the core trusts it as-is.
type Caller struct {
	ID   string
	Role string
}

// CreateEventRequest carries the fields for a new event
type CreateEventRequest struct {
	Title string
	Body  string
	Photo *Photo
}

// UpdateEventRequest is an allow-list field patch for an existing event.
// Nil fields are left untouched. The author field is deliberately not
// representable here, so a patch can never reassign ownership.
type UpdateEventRequest struct {
	Title *string
	Body  *string
	Photo *Photo
}

// CommentEdit identifies a comment by id and carries its replacement text
type CommentEdit struct {
	ID   string
	Text string
}

// HasLiker reports whether userID is in the event's liker set
func (e *Event) HasLiker(userID string) bool {
	for _, id := range e.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// FindComment returns the comment with the given id, or nil
func (e *Event) FindComment(commentID string) *Comment {
	for i := range e.Comments {
		if e.Comments[i].ID == commentID {
			return &e.Comments[i]
		}
	}
	return nil
}
