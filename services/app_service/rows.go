package app_service

import "petadot/model/app_model"

// pets/events/pet_stories各自的管道适配器

type petRow struct {
	pet *app_model.Pet
}

func (r petRow) TableName() string  { return r.pet.TableName() }
func (r petRow) Model() interface{} { return r.pet }
func (r petRow) RowID() uint        { return r.pet.ID }
func (r petRow) Category() string   { return r.pet.Category }

// 进入违禁词检查的文本：名称+描述
func (r petRow) ModeratedText() string {
	return r.pet.Name + " " + r.pet.Description
}

func (r petRow) HasSlug() bool                { return true }
func (r petRow) SlugSource() (string, string) { return r.pet.Name, r.pet.City }
func (r petRow) CurrentSlug() string          { return r.pet.Slug }

func (r petRow) ApplySlug(slug string, finalized bool) {
	r.pet.Slug = slug
	r.pet.SlugFinalized = finalized
}

func (r petRow) ApplyStatus(status app_model.ReviewStatus) { r.pet.Status = status }

type eventRow struct {
	event *app_model.Event
}

func (r eventRow) TableName() string  { return r.event.TableName() }
func (r eventRow) Model() interface{} { return r.event }
func (r eventRow) RowID() uint        { return r.event.ID }
func (r eventRow) Category() string   { return app_model.CategoryEvent }

func (r eventRow) ModeratedText() string {
	return r.event.Name + " " + r.event.Description
}

func (r eventRow) HasSlug() bool                { return true }
func (r eventRow) SlugSource() (string, string) { return r.event.Name, r.event.City }
func (r eventRow) CurrentSlug() string          { return r.event.Slug }

func (r eventRow) ApplySlug(slug string, finalized bool) {
	r.event.Slug = slug
	r.event.SlugFinalized = finalized
}

func (r eventRow) ApplyStatus(status app_model.ReviewStatus) { r.event.Status = status }

type storyRow struct {
	story *app_model.PetStory
}

func (r storyRow) TableName() string  { return r.story.TableName() }
func (r storyRow) Model() interface{} { return r.story }
func (r storyRow) RowID() uint        { return r.story.ID }
func (r storyRow) Category() string   { return app_model.CategoryStory }

func (r storyRow) ModeratedText() string {
	return r.story.Title + " " + r.story.Content
}

// 故事没有slug和城市字段，不参与slug分配
func (r storyRow) HasSlug() bool                               { return false }
func (r storyRow) SlugSource() (string, string)                { return "", "" }
func (r storyRow) CurrentSlug() string                         { return "" }
func (r storyRow) ApplySlug(slug string, finalized bool)       {}
func (r storyRow) ApplyStatus(status app_model.ReviewStatus)   { r.story.Status = status }
