package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Option is the canonical answer-option shape. Older documents stored options
// as plain strings or as {text, value, id} objects; UnmarshalBSONValue accepts
// both so everything downstream only deals with this struct.
type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

func (o *Option) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	if t == bsontype.String {
		o.ID = ""
		o.Text = rv.StringValue()
		return nil
	}
	var doc struct {
		ID    string `bson:"id"`
		Text  string `bson:"text"`
		Value string `bson:"value"`
	}
	if err := rv.Unmarshal(&doc); err != nil {
		return err
	}
	o.ID = doc.ID
	o.Text = doc.Text
	if o.Text == "" {
		o.Text = doc.Value
	}
	return nil
}

type Question struct {
	ID            string   `bson:"id" json:"id"`
	Text          string   `bson:"text" json:"text"`
	Options       []Option `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correct_answer"`
	Explanation   string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// Normalize assigns index-based option ids where legacy data left them empty.
func (q *Question) Normalize() {
	for i := range q.Options {
		if q.Options[i].ID == "" {
			q.Options[i].ID = strconv.Itoa(i)
		}
	}
}
