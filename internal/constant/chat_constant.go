package constant

// Fixed user-facing strings. The service speaks Korean; these are returned
// verbatim and never built from provider output.
const (
	// Returned when the classifier routes a question out of domain
	OutOfDomainResponse = "저는 서울시 청년 주거 정책 전문 AI입니다. 관련된 질문만 답변드릴 수 있어요 🙇‍♀️"

	// Returned when a generation call fails inside the pipeline
	GenerationErrorResponse = "[오류] 일시적으로 AI 답변이 불가합니다. 네트워크 또는 AI 서버 연결 문제일 수 있습니다."

	// Returned on every /chat call while the vector index is unavailable
	RagDisabledResponse = "[오류] 벡터스토어가 초기화되지 않아 RAG 기능을 사용할 수 없습니다."

	// Placeholder title when a reference document carries no policy name
	DefaultReferenceTitle = "정책 정보"
)

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)
