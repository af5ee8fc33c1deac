package domain

type TagResourceInput struct {
	ResourceArn *string `json:"ResourceArn,omitzero" validate:"required" constraint:"required,arn=any"`
	Tags        []Tag   `json:"Tags,omitzero" validate:"required,dive" constraint:"required,max=200,dive"`
}

// TagResourceOutput is empty on the wire
type TagResourceOutput struct{}

type UntagResourceInput struct {
	ResourceArn *string  `json:"ResourceArn,omitzero" validate:"required" constraint:"required,arn=any"`
	TagKeys     []string `json:"TagKeys,omitzero" validate:"required" constraint:"required,max=200,dive,min=1,max=128"`
}

// UntagResourceOutput is empty on the wire
type UntagResourceOutput struct{}

type ListTagsForResourceInput struct {
	ResourceArn *string `json:"ResourceArn,omitzero" validate:"required" constraint:"required,arn=any"`
}

type ListTagsForResourceOutput struct {
	ResourceArn *string `json:"ResourceArn,omitzero"`
	Tags        []Tag   `json:"Tags,omitzero" validate:"omitempty,dive"`
}
