package domain

import "time"

// User represents an account row. Rows are created by the external auth
// service at signup; this backend reads, updates and cascade-deletes them.
type User struct {
	ID        string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email     string     `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	Username  string     `gorm:"column:username;size:100" json:"username"`
	Lastname  string     `gorm:"column:lastname;size:100" json:"lastname"`
	BioDesc   string     `gorm:"column:bio_desc;type:text" json:"bioDesc"`
	Birthday  string     `gorm:"column:birthday;size:10" json:"birthday"`
	ImageName string     `gorm:"column:image_name;size:255" json:"image_name"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

// TableName returns the table name
func (User) TableName() string {
	return "users"
}

// PublicProfile is the subset of profile fields visible to other users
type PublicProfile struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Lastname  string `json:"lastname"`
	BioDesc   string `json:"bioDesc"`
	Birthday  string `json:"birthday"`
	ImageName string `json:"image_name"`
}

// Public returns the publicly visible view of the profile
func (u *User) Public() PublicProfile {
	return PublicProfile{
		Email:     u.Email,
		Username:  u.Username,
		Lastname:  u.Lastname,
		BioDesc:   u.BioDesc,
		Birthday:  u.Birthday,
		ImageName: u.ImageName,
	}
}

// ProfileUpdateRequest carries the optional profile fields of a partial
// update. Only fields present in the request end up in the update map.
type ProfileUpdateRequest struct {
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Lastname  *string `json:"lastname"`
	BioDesc   *string `json:"bioDesc"`
	Birthday  *string `json:"birthday"`
	ImageName *string `json:"image_name"`
}

// Fields returns the column→value map of the supplied fields
func (r *ProfileUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Username != nil {
		fields["username"] = *r.Username
	}
	if r.Lastname != nil {
		fields["lastname"] = *r.Lastname
	}
	if r.BioDesc != nil {
		fields["bio_desc"] = *r.BioDesc
	}
	if r.Birthday != nil {
		fields["birthday"] = *r.Birthday
	}
	if r.ImageName != nil {
		fields["image_name"] = *r.ImageName
	}
	return fields
}
