package models

// Profile is the per-user record keyed by Firebase UID.
type Profile struct {
	UID            string  `json:"uid" firestore:"uid" bson:"uid"`
	Name           string  `json:"name" firestore:"name" bson:"name"`
	Gender         string  `json:"gender" firestore:"gender" bson:"gender"`
	Lifestyle      string  `json:"lifestyle" firestore:"lifestyle" bson:"lifestyle"`
	ProfilePicture *string `json:"profilePicture" firestore:"profilePicture" bson:"profilePicture"`
}

// ProfileInput holds the text fields of a create/update request.
// Nil pointers mean the field was not sent.
type ProfileInput struct {
	UID       string  `json:"uid"`
	Name      *string `json:"name"`
	Gender    *string `json:"gender"`
	Lifestyle *string `json:"lifestyle"`
}

// Apply overwrites the profile fields that were supplied in the input.
func (in *ProfileInput) Apply(p *Profile) {
	if in == nil {
		return
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Lifestyle != nil {
		p.Lifestyle = *in.Lifestyle
	}
}
