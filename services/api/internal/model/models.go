package model

// All lists every table of the service, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProductInfoModel{},
		&SocialPostModel{},
		&FileModel{},
		&TemplateModel{},
	}
}
