package services

import (
	"context"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ansh1vohra/edublog-server/models"
)

// dupKeyErr mimics the error the driver returns when a unique index
// rejects a write.
func dupKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

type fakeBlogStore struct {
	posts []models.BlogPost
}

func (f *fakeBlogStore) Insert(_ context.Context, b *models.BlogPost) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	b.ID = id
	f.posts = append(f.posts, *b)
	return id, nil
}

func (f *fakeBlogStore) ListAll(_ context.Context) ([]models.BlogPost, error) {
	// newest first, like the real repository's sort on _id
	out := make([]models.BlogPost, 0, len(f.posts))
	for i := len(f.posts) - 1; i >= 0; i-- {
		out = append(out, f.posts[i])
	}
	return out, nil
}

func (f *fakeBlogStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBlogStore) ListByUserMail(_ context.Context, userMail string) ([]models.BlogPost, error) {
	out := make([]models.BlogPost, 0)
	for _, p := range f.posts {
		if p.UserMail == userMail {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCommentStore struct {
	comments map[primitive.ObjectID]*models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[primitive.ObjectID]*models.Comment)}
}

func (f *fakeCommentStore) Insert(_ context.Context, c *models.Comment) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	c.ID = id
	cp := *c
	f.comments[id] = &cp
	return id, nil
}

func (f *fakeCommentStore) PushReply(_ context.Context, commentID primitive.ObjectID, reply models.Reply) (int64, error) {
	c, ok := f.comments[commentID]
	if !ok {
		return 0, nil
	}
	c.Replies = append(c.Replies, reply)
	return 1, nil
}

func (f *fakeCommentStore) ListByPostID(_ context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	out := make([]models.Comment, 0)
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeMaterialStore struct {
	materials map[primitive.ObjectID]models.StudyMaterial
}

func newFakeMaterialStore() *fakeMaterialStore {
	return &fakeMaterialStore{materials: make(map[primitive.ObjectID]models.StudyMaterial)}
}

func (f *fakeMaterialStore) List(_ context.Context) ([]models.StudyMaterial, error) {
	out := make([]models.StudyMaterial, 0, len(f.materials))
	for _, m := range f.materials {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMaterialStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.StudyMaterial, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &m, nil
}

func (f *fakeMaterialStore) Insert(_ context.Context, m *models.StudyMaterial) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	m.ID = id
	f.materials[id] = *m
	return id, nil
}

func (f *fakeMaterialStore) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.materials[id]; !ok {
		return 0, nil
	}
	delete(f.materials, id)
	return 1, nil
}

// fakeUserStore enforces the same uniqueness the real collection's indexes
// do, so conflict paths can be exercised without a database.
type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) (primitive.ObjectID, error) {
	for _, existing := range f.users {
		if existing.UserMail == u.UserMail || existing.AuthorName == u.AuthorName {
			return primitive.NilObjectID, dupKeyErr()
		}
	}
	id := primitive.NewObjectID()
	u.ID = id
	f.users = append(f.users, *u)
	return id, nil
}

func (f *fakeUserStore) FindByMail(_ context.Context, userMail string) (*models.User, error) {
	for _, u := range f.users {
		if u.UserMail == userMail {
			cp := u
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) FindByMails(_ context.Context, userMails []string) ([]models.User, error) {
	want := make(map[string]bool, len(userMails))
	for _, m := range userMails {
		want[m] = true
	}
	out := make([]models.User, 0)
	for _, u := range f.users {
		if want[u.UserMail] {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) UpdateAuthorName(_ context.Context, userMail, authorName string) (*models.User, error) {
	for _, u := range f.users {
		if u.AuthorName == authorName && u.UserMail != userMail {
			return nil, dupKeyErr()
		}
	}
	for i := range f.users {
		if f.users[i].UserMail == userMail {
			f.users[i].AuthorName = authorName
			cp := f.users[i]
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) UpdateAuthorImg(_ context.Context, userMail, imageURL string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].UserMail == userMail {
			f.users[i].AuthorImg = imageURL
			cp := f.users[i]
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// fakeFileStore records uploads and hands back deterministic URLs.
type fakeFileStore struct {
	uploads []string
}

func (f *fakeFileStore) Upload(_ context.Context, folder string, file *multipart.FileHeader) (string, error) {
	url := "https://files.example.com/" + folder + "/" + file.Filename
	f.uploads = append(f.uploads, url)
	return url, nil
}

// fakeMailSender records the mails it was asked to deliver.
type fakeMailSender struct {
	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeMailSender) SendEmail(_ context.Context, to, subject, body string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
