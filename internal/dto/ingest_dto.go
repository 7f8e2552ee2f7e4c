package dto

// PolicyRecord is one line of the ingestion JSONL file
type PolicyRecord struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
	URL      string `json:"url,omitempty"`
}

// PublishEmbedChunkMessage is the payload of one embed-chunk event
type PublishEmbedChunkMessage struct {
	PolicyID   string `json:"policy_id"`
	Category   string `json:"category"`
	Source     string `json:"source"`
	URL        string `json:"url"`
	Content    string `json:"content"`
	ChunkIndex int    `json:"chunk_index"`
}
