package domain

// Inputs that accept a ClientRequestToken

func (in *StartEntitiesDetectionJobInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *StartEntitiesDetectionJobInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *StartSentimentDetectionJobInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *StartSentimentDetectionJobInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *StartKeyPhrasesDetectionJobInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *StartKeyPhrasesDetectionJobInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *StartDominantLanguageDetectionJobInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *StartDominantLanguageDetectionJobInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *StartPiiEntitiesDetectionJobInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *StartPiiEntitiesDetectionJobInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *StartTopicsDetectionJobInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *StartTopicsDetectionJobInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *StartDocumentClassificationJobInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *StartDocumentClassificationJobInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *CreateDocumentClassifierInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *CreateDocumentClassifierInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

func (in *CreateEndpointInput) IdempotencyToken() *string    { return in.ClientRequestToken }
func (in *CreateEndpointInput) SetIdempotencyToken(t string) { in.ClientRequestToken = &t }

var (
	_ IdempotentInput = (*StartEntitiesDetectionJobInput)(nil)
	_ IdempotentInput = (*StartSentimentDetectionJobInput)(nil)
	_ IdempotentInput = (*StartKeyPhrasesDetectionJobInput)(nil)
	_ IdempotentInput = (*StartDominantLanguageDetectionJobInput)(nil)
	_ IdempotentInput = (*StartPiiEntitiesDetectionJobInput)(nil)
	_ IdempotentInput = (*StartTopicsDetectionJobInput)(nil)
	_ IdempotentInput = (*StartDocumentClassificationJobInput)(nil)
	_ IdempotentInput = (*CreateDocumentClassifierInput)(nil)
	_ IdempotentInput = (*CreateEndpointInput)(nil)
)
