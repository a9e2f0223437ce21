package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ansh1vohra/edublog-server/models"
)

// UserService encapsulates business logic for author profiles and OTP
// delivery.
type UserService struct {
	users            UserStore
	files            FileStore
	mail             MailSender
	defaultAvatarURL string
}

func NewUserService(users UserStore, files FileStore, mail MailSender, defaultAvatarURL string) *UserService {
	return &UserService{
		users:            users,
		files:            files,
		mail:             mail,
		defaultAvatarURL: defaultAvatarURL,
	}
}

// Store creates a new user with the default avatar. Duplicate userMail or
// authorName surfaces as a conflict from the unique indexes on the write
// itself, so two concurrent requests cannot both succeed.
func (s *UserService) Store(ctx context.Context, userMail, authorName string) (*models.User, error) {
	user := &models.User{
		UserMail:   userMail,
		AuthorName: authorName,
		AuthorImg:  s.defaultAvatarURL,
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	user.ID = id
	return user, nil
}

// Fetch returns the user stored under the given mail address.
func (s *UserService) Fetch(ctx context.Context, userMail string) (*models.User, error) {
	user, err := s.users.FindByMail(ctx, userMail)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SendOTP mails the one-time code to the given address. The code itself is
// never included in any HTTP response; the mail is the only channel.
func (s *UserService) SendOTP(ctx context.Context, email, otp string) error {
	body := fmt.Sprintf("Your OTP code is %s", otp)
	return s.mail.SendEmail(ctx, email, "Your OTP Code", body)
}

// UpdateAuthorName renames an author. The unique index on authorName turns
// a collision with another user into a conflict without a separate lookup.
func (s *UserService) UpdateAuthorName(ctx context.Context, userMail, authorName string) (*models.User, error) {
	user, err := s.users.UpdateAuthorName(ctx, userMail, authorName)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAuthorNameTaken
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateAuthorImage stores the uploaded picture and points the profile at
// its URL. When the document write fails the uploaded file stays behind
// (known limitation).
func (s *UserService) UpdateAuthorImage(ctx context.Context, userMail string, image *multipart.FileHeader) (*models.User, error) {
	imageURL, err := s.files.Upload(ctx, "profile_pictures", image)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateAuthorImg(ctx, userMail, imageURL)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
