package service

import "TsuriSpot-App/internal/domain/model"

// DefaultPageSize 1ページあたりの表示件数のデフォルト値
const DefaultPageSize = 20

// Paginator はフィルタ・ソート済みコレクションへの固定サイズの
// ウィンドウを提供する。ページ移動はスライス範囲を変えるだけで、
// データの再取得や並び替えは行わない
type Paginator struct {
	pageSize    int
	currentPage int
}

// NewPaginator は指定ページサイズのPaginatorを作成する
// 0以下が渡された場合はデフォルト値を使う
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{
		pageSize:    pageSize,
		currentPage: 1,
	}
}

// CurrentPage 現在のページ番号（1始まり）を返す
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// PageSize 1ページあたりの件数を返す
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// SetPage ページ番号を設定する。1未満は1に切り上げる
// （上限はコレクション件数に依存するため Paginate 時にクランプする）
func (p *Paginator) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.currentPage = page
}

// Reset ページ番号を1に戻す
// クエリ・位置情報・並び順のいずれかが変わったら必ず呼ぶこと。
// 短くなった結果に対して古いページ番号を残してはならない
func (p *Paginator) Reset() {
	p.currentPage = 1
}

// TotalPages 件数に対する総ページ数を返す。0件でも最低1ページ
func (p *Paginator) TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + p.pageSize - 1) / p.pageSize
}

// Paginate 順序付きコレクションから現在ページのスライスを切り出す
// ページ番号が範囲外のときは [1, totalPages] にクランプして正規化する
func (p *Paginator) Paginate(spots []model.Spot) *model.SpotPage {
	totalPages := p.TotalPages(len(spots))
	if p.currentPage > totalPages {
		p.currentPage = totalPages
	}
	if p.currentPage < 1 {
		p.currentPage = 1
	}

	start := (p.currentPage - 1) * p.pageSize
	end := start + p.pageSize
	if start > len(spots) {
		start = len(spots)
	}
	if end > len(spots) {
		end = len(spots)
	}

	return &model.SpotPage{
		Spots:       spots[start:end],
		TotalCount:  len(spots),
		CurrentPage: p.currentPage,
		TotalPages:  totalPages,
		PageSize:    p.pageSize,
	}
}
