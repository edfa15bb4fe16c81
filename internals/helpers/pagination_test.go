package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		page    int
		perPage int
		want    Pagination
	}{
		{
			name: "exact pages", total: 40, page: 1, perPage: 20,
			want: Pagination{CurrentPage: 1, ItemsPerPage: 20, TotalItems: 40, TotalPages: 2},
		},
		{
			name: "partial last page", total: 41, page: 3, perPage: 20,
			want: Pagination{CurrentPage: 3, ItemsPerPage: 20, TotalItems: 41, TotalPages: 3},
		},
		{
			name: "empty result still one page", total: 0, page: 1, perPage: 20,
			want: Pagination{CurrentPage: 1, ItemsPerPage: 20, TotalItems: 0, TotalPages: 1},
		},
		{
			name: "bad inputs normalised", total: 10, page: 0, perPage: 0,
			want: Pagination{CurrentPage: 1, ItemsPerPage: 20, TotalItems: 10, TotalPages: 1},
		},
		{
			name: "single item", total: 1, page: 1, perPage: 20,
			want: Pagination{CurrentPage: 1, ItemsPerPage: 20, TotalItems: 1, TotalPages: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPagination(tt.total, tt.page, tt.perPage); got != tt.want {
				t.Errorf("BuildPagination() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
