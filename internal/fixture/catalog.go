// Package fixture holds the hand-authored seed catalog the mock server
// boots from. Everything here is plain data shaping; mutation lives in
// the store package.
package fixture

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/glodam/glodam-mock-api/internal/domain"
)

// Flagship record set — the fully detailed "original work" the lorebook and
// IP-expansion demo screens are built around. It is not part of the
// author's own work list; created work ids start at 100+len(works) so they
// never collide with it.
const (
	FlagshipWorkID     = 101
	FlagshipWorkTitle  = "별을 삼킨 바다"
	FlagshipAuthorID   = 7
	FlagshipAuthorName = "서해린"
)

// Curated pools for randomized seed works
var (
	titlePool = []string{
		"달조각 연대기",
		"회귀한 검성의 일기",
		"아카데미의 이단아",
		"폐하, 저는 악녀입니다",
		"심연 너머의 도서관",
		"붉은 모래의 계약자",
		"마지막 연금술사",
		"천년의 겨울",
		"그림자 없는 왕",
		"주문 없는 마법사",
	}

	genrePool = []string{
		"판타지",
		"로맨스판타지",
		"현대판타지",
		"무협",
		"미스터리",
		"SF",
	}

	writerPool = []string{
		"강무결",
		"하은설",
		"도윤재",
		"백시아",
		"임청록",
	}

	workStatuses = []domain.WorkStatus{
		domain.WorkStatusNew,
		domain.WorkStatusOngoing,
		domain.WorkStatusCompleted,
		domain.WorkStatusHiatus,
		domain.WorkStatusDropped,
	}
)

// Seed is the full collection set the store is constructed from
type Seed struct {
	Works             []domain.Work
	LorebooksByWork   map[int][]domain.Lorebook
	ManuscriptsByWork map[int][]domain.Manuscript
	// WorkOrder is the key insertion order of the keyed collections;
	// global child-id scans must follow it
	WorkOrder []int
	Proposals []domain.Proposal
}

// BuildSeed produces the seed collections. Pure apart from timestamp
// capture: createdAt/updatedAt are stamped with the supplied clock value,
// and title/genre/writer sampling draws from the supplied random source so
// tests can pin both.
func BuildSeed(rng *rand.Rand, now time.Time) Seed {
	seed := Seed{
		LorebooksByWork:   map[int][]domain.Lorebook{},
		ManuscriptsByWork: map[int][]domain.Manuscript{},
	}

	// 5 randomized seed works, ids 1..5
	for i := 0; i < 5; i++ {
		id := i + 1
		title := titlePool[rng.Intn(len(titlePool))]
		genre := genrePool[rng.Intn(len(genrePool))]
		status := workStatuses[i%len(workStatuses)]

		seed.Works = append(seed.Works, domain.Work{
			ID:                id,
			Title:             title,
			Description:       fmt.Sprintf("%s — %s 연재작", title, genre),
			Synopsis:          fmt.Sprintf("「%s」의 시놉시스입니다. 아직 작성 중인 초안이 들어 있습니다.", title),
			Genre:             genre,
			CoverImageURL:     fmt.Sprintf("https://cdn.glodam.dev/covers/work-%d.jpg", id),
			Status:            status,
			StatusDescription: statusDescription(status),
			Writer:            writerPool[rng.Intn(len(writerPool))],
			CreatedAt:         now,
			UpdatedAt:         now,
		})

		seed.ManuscriptsByWork[id] = seedManuscripts(id, 3, now)
		seed.WorkOrder = append(seed.WorkOrder, id)
	}

	// Flagship collections live under the flagship id; the work record
	// itself belongs to another author and is not in the list above
	seed.LorebooksByWork[FlagshipWorkID] = flagshipLorebooks(now)
	seed.ManuscriptsByWork[FlagshipWorkID] = seedManuscripts(FlagshipWorkID, 5, now)
	seed.WorkOrder = append(seed.WorkOrder, FlagshipWorkID)

	seed.Proposals = flagshipProposals(now)

	return seed
}

func statusDescription(s domain.WorkStatus) string {
	switch s {
	case domain.WorkStatusNew:
		return "신규 등록"
	case domain.WorkStatusOngoing:
		return "연재 중"
	case domain.WorkStatusCompleted:
		return "완결"
	case domain.WorkStatusHiatus:
		return "휴재 중"
	case domain.WorkStatusDropped:
		return "연재 중단"
	default:
		return ""
	}
}

func seedManuscripts(workID, count int, now time.Time) []domain.Manuscript {
	var out []domain.Manuscript
	for ep := 1; ep <= count; ep++ {
		out = append(out, domain.Manuscript{
			ID:        ep, // per-work counter; not globally unique
			WorkID:    workID,
			Episode:   ep,
			Subtitle:  fmt.Sprintf("%d화", ep),
			Txt:       fmt.Sprintf("%d화 본문 초고입니다. 퇴고 전 원고가 그대로 들어 있습니다.", ep),
			CreatedAt: now,
		})
	}
	return out
}

// flagshipLorebooks returns the 10 hand-authored entries of the flagship
// work. Ids are category-coded by thousands; the catalog max is 6001, so
// the first entry created on top of this set gets 6002.
func flagshipLorebooks(now time.Time) []domain.Lorebook {
	entry := func(id int, category, title, description, content, keyword string, tags ...string) domain.Lorebook {
		return domain.Lorebook{
			ID:          id,
			WorkID:      FlagshipWorkID,
			Category:    category,
			Title:       title,
			Description: description,
			Content:     content,
			Keyword:     keyword,
			Setting:     `{"version":1,"blocks":[]}`,
			Tags:        tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return []domain.Lorebook{
		entry(1001, domain.CategoryPerson, "이하진",
			"침몰한 등대선의 마지막 항해사이자 이야기의 주인공.",
			"기억을 대가로 바다의 언어를 읽는 능력을 얻었다. 3년 전 침몰 사고의 유일한 생존자이며, 사고 당일의 기억만이 비어 있다.",
			"주인공", "주연", "항해사"),
		entry(1002, domain.CategoryPerson, "문소월",
			"별무리 상단의 후계자. 하진의 조력자이자 숨은 의뢰인.",
			"상단의 장부 뒤에 가문이 백 년 동안 숨겨 온 해도를 감추고 있다. 하진에게 접근한 진짜 목적은 3장에서 밝혀진다.",
			"조력자", "조연", "상단"),
		entry(1003, domain.CategoryPerson, "검은 물의 사제",
			"심해 교단의 대리인. 이름이 알려지지 않은 적대자.",
			"물에 잠긴 자들의 목소리를 빌려 말한다. 등장할 때마다 주변의 소금기가 짙어지는 것이 복선.",
			"적대자", "교단"),
		entry(2001, domain.CategoryPlace, "세이렌 등대",
			"반도 끝에 선 폐등대. 하진의 거처이자 1부의 주요 무대.",
			"등탑의 불이 꺼진 날 바다가 한 뼘 올라왔다는 기록이 마을 일지에 남아 있다. 지하 창고는 구 해군의 암호 보관소였다.",
			"등대", "1부", "거점"),
		entry(2002, domain.CategoryPlace, "가라앉은 시장",
			"만조 때만 수면 아래로 사라지는 수상 시장.",
			"썰물 여섯 시간 동안만 열리고, 바다에서 건진 물건은 무엇이든 거래된다. 기억을 파는 노점이 단 한 곳 있다.",
			"시장", "거래"),
		entry(3001, domain.CategoryItem, "조수의 나침반",
			"방위 대신 '잃어버린 것'을 가리키는 나침반.",
			"바늘이 멈추는 일은 없으며, 소유자가 바뀌면 이전 소유자의 기억 하나를 지운다. 하진이 사고 당일을 기억하지 못하는 이유와 직결된다.",
			"핵심 아이템", "나침반"),
		entry(4001, domain.CategoryGroup, "별무리 상단",
			"연안 무역을 장악한 상단. 소월의 가문이 3대째 운영한다.",
			"표면적으로는 소금과 비단을 다루지만, 실제 수입의 절반은 침몰선 인양 정보 중개에서 나온다.",
			"상단", "세력"),
		entry(4002, domain.CategoryGroup, "심해 교단",
			"바다 밑에 신이 잠들어 있다고 믿는 비밀 결사.",
			"신도는 스스로 기억을 바쳐 입교한다. 교단의 최종 목적은 등대의 불을 모두 끄는 것.",
			"교단", "적대 세력"),
		entry(5001, domain.CategoryEra, "대침수 이후 32년",
			"해수면이 도시 세 층을 삼킨 뒤의 시대.",
			"달력은 침수 원년을 기준으로 다시 쓰였다. 구시대의 지도는 금서이며, 소지만으로 처벌받는다.",
			"시대 배경"),
		entry(6001, domain.CategoryEvent, "등대선 '새벽' 침몰",
			"3년 전 승무원 41명과 함께 가라앉은 등대선 사고.",
			"공식 기록은 폭풍이지만, 그날 밤 바다는 잔잔했다는 증언이 남아 있다. 이야기 전체를 관통하는 중심 사건.",
			"중심 사건", "침몰"),
	}
}

// flagshipProposals returns the 3 seed IP-expansion proposals, newest first
func flagshipProposals(now time.Time) []domain.Proposal {
	return []domain.Proposal{
		{
			ID:         21047,
			Title:      "「별을 삼킨 바다」 웹툰화 제안",
			AuthorID:   FlagshipAuthorID,
			AuthorName: FlagshipAuthorName,
			WorkID:     FlagshipWorkID,
			WorkTitle:  FlagshipWorkTitle,
			Format:     "WEBTOON",
			Status:     domain.ProposalStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
			Business: domain.ProposalBusiness{
				Budget:          "3억 원",
				ExpectedRevenue: "연 12억 원",
				TargetMarket:    "국내 웹툰 플랫폼",
				Partners:        []string{"문라이트 스튜디오"},
			},
			MediaDetails: domain.ProposalMediaDetails{
				MediaType:    "웹툰",
				EpisodeCount: 60,
				Duration:     "주 1회 연재 14개월",
				Platform:     "글로담 웹툰",
			},
			ContentStrategy: domain.ProposalContentStrategy{
				TargetAudience:  "20-30대 여성",
				Differentiation: "원작의 해양 판타지 연출을 세로 스크롤에 맞춰 재구성",
				MarketingPlan:   "원작 완결 시점에 맞춘 동시 런칭",
			},
		},
		{
			ID:         20563,
			Title:      "오디오 드라마 시즌 1 기획",
			AuthorID:   FlagshipAuthorID,
			AuthorName: FlagshipAuthorName,
			WorkID:     FlagshipWorkID,
			WorkTitle:  FlagshipWorkTitle,
			Format:     "AUDIO_DRAMA",
			Status:     domain.ProposalStatusReviewing,
			CreatedAt:  now.Add(-24 * time.Hour),
			UpdatedAt:  now.Add(-2 * time.Hour),
			Business: domain.ProposalBusiness{
				Budget:          "8천만 원",
				ExpectedRevenue: "연 2억 원",
				TargetMarket:    "오디오 콘텐츠 구독 서비스",
				Partners:        []string{"보이스온", "스튜디오 파도"},
			},
			MediaDetails: domain.ProposalMediaDetails{
				MediaType:    "오디오 드라마",
				EpisodeCount: 12,
				Duration:     "회당 30분",
				Platform:     "옥수수 오디오",
			},
			ContentStrategy: domain.ProposalContentStrategy{
				TargetAudience:  "출퇴근 시간대 청취자",
				Differentiation: "파도·등대 환경음을 바이노럴로 녹음",
				MarketingPlan:   "1-2화 무료 공개 후 시즌 패스 판매",
			},
		},
		{
			ID:         20112,
			Title:      "단행본 출간 제안",
			AuthorID:   FlagshipAuthorID,
			AuthorName: FlagshipAuthorName,
			WorkID:     FlagshipWorkID,
			WorkTitle:  FlagshipWorkTitle,
			Format:     "BOOK",
			Status:     domain.ProposalStatusApproved,
			CreatedAt:  now.Add(-72 * time.Hour),
			UpdatedAt:  now.Add(-48 * time.Hour),
			Business: domain.ProposalBusiness{
				Budget:          "5천만 원",
				ExpectedRevenue: "초판 1만 부",
				TargetMarket:    "장르 소설 단행본 시장",
				Partners:        []string{"해문출판사"},
			},
			MediaDetails: domain.ProposalMediaDetails{
				MediaType:    "단행본",
				EpisodeCount: 5,
				Duration:     "전 5권",
				Platform:     "오프라인 서점 및 전자책",
			},
			ContentStrategy: domain.ProposalContentStrategy{
				TargetAudience:  "원작 완독 독자",
				Differentiation: "외전 2편과 설정화 수록",
				MarketingPlan:   "한정판 표지 선주문 이벤트",
			},
		},
	}
}
