package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository                 *UserRepository
	TokenRepository                *TokenRepository
	PostRepository                 *PostRepository
	CourseRepository               *CourseRepository
	EnrollmentRepository           *EnrollmentRepository
	ForumRepository                *ForumRepository
	NoteRepository                 *NoteRepository
	NoteRatingRepository           *NoteRatingRepository
	PodcastRepository              *PodcastRepository
	ProjectRepository              *ProjectRepository
	ProjectMemberRepository        *ProjectMemberRepository
	HackathonRepository            *HackathonRepository
	HackathonParticipantRepository *HackathonParticipantRepository
	ContributionRepository         *ContributionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:                 NewUserRepository(db),
		TokenRepository:                NewTokenRepository(db),
		PostRepository:                 NewPostRepository(db),
		CourseRepository:               NewCourseRepository(db),
		EnrollmentRepository:           NewEnrollmentRepository(db),
		ForumRepository:                NewForumRepository(db),
		NoteRepository:                 NewNoteRepository(db),
		NoteRatingRepository:           NewNoteRatingRepository(db),
		PodcastRepository:              NewPodcastRepository(db),
		ProjectRepository:              NewProjectRepository(db),
		ProjectMemberRepository:        NewProjectMemberRepository(db),
		HackathonRepository:            NewHackathonRepository(db),
		HackathonParticipantRepository: NewHackathonParticipantRepository(db),
		ContributionRepository:         NewContributionRepository(db),
	}
}
