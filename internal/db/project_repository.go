package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

const projectsCollection = "projects"

// firestoreProjectRepository implements ProjectRepository over the per-user
// projects subcollection (users/{uid}/projects/{pid}).
type firestoreProjectRepository struct {
	client *firestore.Client
}

// NewFirestoreProjectRepository creates a Firestore-backed ProjectRepository.
func NewFirestoreProjectRepository(client *firestore.Client) ProjectRepository {
	return &firestoreProjectRepository{client: client}
}

func (r *firestoreProjectRepository) ownerProjects(ownerID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(ownerID).Collection(projectsCollection)
}

func (r *firestoreProjectRepository) Create(ctx context.Context, project *models.Project) (string, error) {
	if project.OwnerID == "" {
		return "", errors.New("project owner ID cannot be empty")
	}
	docRef := r.ownerProjects(project.OwnerID).NewDoc()
	project.ID = docRef.ID
	if _, err := docRef.Create(ctx, project); err != nil {
		return "", fmt.Errorf("failed to create project for user %q: %w", project.OwnerID, err)
	}
	return docRef.ID, nil
}

func (r *firestoreProjectRepository) Get(ctx context.Context, ownerID, projectID string) (*models.Project, error) {
	if ownerID == "" || projectID == "" {
		return nil, errors.New("ownerID and projectID cannot be empty")
	}
	docSnap, err := r.ownerProjects(ownerID).Doc(projectID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("project %q: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project %q: %w", projectID, err)
	}

	var project models.Project
	if err := docSnap.DataTo(&project); err != nil {
		return nil, fmt.Errorf("failed to decode project %q: %w", projectID, err)
	}
	project.ID = docSnap.Ref.ID
	return &project, nil
}

func (r *firestoreProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Project, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty")
	}
	return collectProjects(r.ownerProjects(ownerID).Documents(ctx))
}

func (r *firestoreProjectRepository) ListAll(ctx context.Context) ([]*models.Project, error) {
	return collectProjects(r.client.CollectionGroup(projectsCollection).Documents(ctx))
}

func (r *firestoreProjectRepository) Update(ctx context.Context, project *models.Project) error {
	if project.OwnerID == "" || project.ID == "" {
		return errors.New("project owner ID and ID cannot be empty")
	}
	if _, err := r.ownerProjects(project.OwnerID).Doc(project.ID).Set(ctx, project); err != nil {
		return fmt.Errorf("failed to update project %q: %w", project.ID, err)
	}
	return nil
}

func (r *firestoreProjectRepository) Delete(ctx context.Context, ownerID, projectID string) error {
	if ownerID == "" || projectID == "" {
		return errors.New("ownerID and projectID cannot be empty")
	}
	if _, err := r.ownerProjects(ownerID).Doc(projectID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete project %q: %w", projectID, err)
	}
	return nil
}

func collectProjects(iter *firestore.DocumentIterator) ([]*models.Project, error) {
	defer iter.Stop()

	var projects []*models.Project
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate projects: %w", err)
		}
		var project models.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, fmt.Errorf("failed to decode project %q: %w", doc.Ref.ID, err)
		}
		project.ID = doc.Ref.ID
		projects = append(projects, &project)
	}
	return projects, nil
}
