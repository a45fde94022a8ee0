package service

import (
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
)

// Services 服务集合
type Services struct {
	Movie *MovieService
	Genre *GenreService
	Actor *ActorService
	User  *UserService
}

// NewServices 创建服务集合，通知网关由外部构造后注入
func NewServices(repos *repository.Repositories, notifier Notifier) *Services {
	return &Services{
		Movie: NewMovieService(repos.Movie, repos.Genre, repos.Actor, notifier),
		Genre: NewGenreService(repos.Genre, repos.Movie),
		Actor: NewActorService(repos.Actor),
		User:  NewUserService(repos.User, repos.Movie),
	}
}
