package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ArthurBosch/online-cinema-backend/internal/model"
	"github.com/ArthurBosch/online-cinema-backend/internal/repository"
)

// UserService 用户与收藏服务
type UserService struct {
	users  *repository.UserRepository
	movies *repository.MovieRepository
}

func NewUserService(users *repository.UserRepository, movies *repository.MovieRepository) *UserService {
	return &UserService{users: users, movies: movies}
}

// ByID 根据 ID 获取用户
func (s *UserService) ByID(id int) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

// UpdateProfile 更新用户资料
// 新邮箱被其他用户占用时返回 ErrEmailTaken；传了新密码则重新加盐哈希，明文不落库
func (s *UserService) UpdateProfile(id int, dto *model.UpdateUserDto) error {
	user, err := s.ByID(id)
	if err != nil {
		return err
	}

	existing, err := s.users.FindByEmail(dto.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != user.ID {
		return repository.ErrEmailTaken
	}

	if dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}

	user.Email = dto.Email
	// 显式传 false 也要生效，所以用指针判断
	if dto.IsAdmin != nil {
		user.IsAdmin = *dto.IsAdmin
	}

	return s.users.Save(user)
}

// GetCount 获取用户总数
func (s *UserService) GetCount() (int64, error) {
	return s.users.Count()
}

// GetAll 获取用户列表，searchTerm 非空时按邮箱搜索
func (s *UserService) GetAll(searchTerm string) ([]*model.User, error) {
	return s.users.FindAll(searchTerm)
}

// Delete 删除用户并返回被删除的记录
func (s *UserService) Delete(id int) (*model.User, error) {
	user, err := s.users.Delete(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

// ==================== 收藏 ====================

// ToggleFavourite 切换收藏：已收藏则移除，未收藏则追加
// 按 ID 值比较成员关系，连续调用两次回到原始状态
func (s *UserService) ToggleFavourite(userID, movieID int) error {
	if _, err := s.ByID(userID); err != nil {
		return err
	}

	// 电影必须已存在，否则 Replace 关联会插入空白电影记录
	exists, err := s.movies.Exists(movieID)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrNotFound
	}

	ids, err := s.users.FindFavouriteIDs(userID)
	if err != nil {
		return err
	}

	found := false
	next := make([]int, 0, len(ids)+1)
	for _, id := range ids {
		if id == movieID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, movieID)
	}

	return s.users.ReplaceFavourites(userID, next)
}

// GetFavourites 获取用户收藏的电影列表（电影的分类一并解析）
func (s *UserService) GetFavourites(id int) ([]*model.Movie, error) {
	movies, err := s.users.FindFavourites(id)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		return nil, repository.ErrNotFound
	}
	return movies, nil
}
